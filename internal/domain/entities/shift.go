package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Shift is a work shift referenced by teams. DurationHours is always derived
// from the timestamps on save and never trusted from client input.
type Shift struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	DurationHours int64     `json:"durationHours"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ShiftPatch carries a partial shift update
type ShiftPatch struct {
	Name     null.String `json:"name"`
	StartsAt null.Time   `json:"startsAt"`
	EndsAt   null.Time   `json:"endsAt"`
}
