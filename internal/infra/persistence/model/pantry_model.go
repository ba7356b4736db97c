package model

import "time"

// PantryModel is the GORM-specific struct for the 'pantries' table.
type PantryModel struct {
	PantryID         string    `gorm:"type:varchar(32);primaryKey"`
	EventDate        time.Time `gorm:"not null;index"`
	Location         string    `gorm:"type:varchar(255);not null"`
	CapacityTotal    int       `gorm:"not null"`
	ReservationCount int       `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null"`
	Title            string    `gorm:"type:varchar(255)"`
	HeaderMessage    string    `gorm:"type:text"`
	EmailMessage     string    `gorm:"type:text"`
	ReservationStart time.Time `gorm:"not null"`
	ReservationEnd   time.Time `gorm:"not null"`
	LocationAddress  string    `gorm:"type:text"`
	LocationAccess   string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PantryModel) TableName() string {
	return "pantries"
}
