package models

import (
	"time"
)

type TeamType struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TeamType) TableName() string {
	return "team_types"
}
