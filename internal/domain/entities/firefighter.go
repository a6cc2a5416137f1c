package entities

// Firefighter is an owned team member. Phone is unique and at most 9 digits.
type Firefighter struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	PaternalName string `json:"paternalName"`
	MaternalName string `json:"maternalName"`
	Phone        int64  `json:"phone"`
}
