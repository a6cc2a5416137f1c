package models

// Owned collection rows carry a nullable team_id foreign key. A nil TeamID
// means the row exists in the pool but is not attached to any team.

type Firefighter struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(50);not null"`
	PaternalName string `gorm:"type:varchar(50);not null"`
	MaternalName string `gorm:"type:varchar(50);not null"`
	Phone        int64  `gorm:"not null;unique"`
	TeamID       *uint  `gorm:"index"`
}

func (Firefighter) TableName() string {
	return "firefighters"
}

type Vehicle struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	Make   string `gorm:"type:varchar(50);not null"`
	Model  string `gorm:"type:varchar(50);not null"`
	Plate  string `gorm:"type:varchar(6);not null"`
	Driver string `gorm:"type:varchar(50);not null"`
	Status string `gorm:"type:varchar(50);not null"`
	TeamID *uint  `gorm:"index"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

type Resource struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(100);not null"`
	Kind     string `gorm:"type:varchar(50);not null"`
	Quantity int    `gorm:"not null"`
	TeamID   *uint  `gorm:"index"`
}

func (Resource) TableName() string {
	return "resources"
}
