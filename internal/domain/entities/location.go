package entities

// Location is a street address owned by a company
type Location struct {
	ID          uint   `json:"id"`
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
	District    string `json:"district"`
	Region      string `json:"region"`
}
