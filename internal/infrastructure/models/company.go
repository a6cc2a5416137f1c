package models

import (
	"time"
)

type Company struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(50);not null;unique"`
	LocationID *uint  `gorm:"index"`
	Location   *Location
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Company) TableName() string {
	return "companies"
}

type Location struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Street      string `gorm:"type:varchar(50);not null"`
	HouseNumber int    `gorm:"not null"`
	District    string `gorm:"type:varchar(50);not null"`
	Region      string `gorm:"type:varchar(50);not null"`
}

func (Location) TableName() string {
	return "locations"
}
