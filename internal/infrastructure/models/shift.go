package models

import (
	"time"
)

type Shift struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(50);not null"`
	StartsAt      time.Time `gorm:"not null"`
	EndsAt        time.Time `gorm:"not null"`
	DurationHours int64     `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Shift) TableName() string {
	return "shifts"
}
