package entities

// Resource is an owned stock of equipment assigned to a team
type Resource struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Quantity int    `json:"quantity"`
}
