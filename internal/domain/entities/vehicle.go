package entities

// Vehicle is an owned team vehicle
type Vehicle struct {
	ID     uint   `json:"id"`
	Make   string `json:"make"`
	Model  string `json:"model"`
	Plate  string `json:"plate"`
	Driver string `json:"driver"`
	Status string `json:"status"`
}
