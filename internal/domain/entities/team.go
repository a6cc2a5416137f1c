package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Team is the aggregate root for an emergency-response team. It owns its
// Firefighters, Vehicles and Resources collections (rows removed from a
// collection are deleted) and references an independently-lifecycled Shift,
// Company and TeamType.
type Team struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	MemberCount  int           `json:"memberCount"`
	IsActive     bool          `json:"isActive"`
	Leader       string        `json:"leader"`
	Shift        *Shift        `json:"shift,omitempty"`
	Company      *Company      `json:"company,omitempty"`
	TeamType     *TeamType     `json:"teamType,omitempty"`
	Firefighters []Firefighter `json:"firefighters,omitempty"`
	Vehicles     []Vehicle     `json:"vehicles,omitempty"`
	Resources    []Resource    `json:"resources,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// TeamPatch carries a partial update. Scalar fields are optional-wrapped so
// absent and explicitly-set values are distinguishable; nil collections leave
// the stored collection untouched while non-nil ones replace it wholesale.
type TeamPatch struct {
	Name         null.String   `json:"name"`
	MemberCount  null.Int      `json:"memberCount"`
	IsActive     null.Bool     `json:"isActive"`
	Leader       null.String   `json:"leader"`
	Shift        *Shift        `json:"shift"`
	Company      *Company      `json:"company"`
	TeamType     *TeamType     `json:"teamType"`
	Firefighters []Firefighter `json:"firefighters"`
	Vehicles     []Vehicle     `json:"vehicles"`
	Resources    []Resource    `json:"resources"`
}
