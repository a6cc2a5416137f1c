package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// TeamType classifies a team (rescue, hazmat, first response, ...)
type TeamType struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamTypePatch carries a partial team-type update
type TeamTypePatch struct {
	Name null.String `json:"name"`
}
