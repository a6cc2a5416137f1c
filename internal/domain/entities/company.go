package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Company is a fire company referenced by teams. Its name is unique and it
// points at a Location.
type Company struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Location  *Location `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyPatch carries a partial company update
type CompanyPatch struct {
	Name     null.String `json:"name"`
	Location *Location   `json:"location"`
}
