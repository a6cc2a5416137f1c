package models

import (
	"time"
)

type Team struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null"`
	MemberCount int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true"`
	Leader      string `gorm:"type:varchar(50)"`

	ShiftID    *uint `gorm:"index"`
	Shift      *Shift
	CompanyID  *uint `gorm:"index"`
	Company    *Company
	TeamTypeID *uint `gorm:"index"`
	TeamType   *TeamType

	Firefighters []Firefighter `gorm:"foreignKey:TeamID"`
	Vehicles     []Vehicle     `gorm:"foreignKey:TeamID"`
	Resources    []Resource    `gorm:"foreignKey:TeamID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Team) TableName() string {
	return "teams"
}
