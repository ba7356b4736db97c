package model

import "time"

// ReservationModel is the GORM-specific struct for the 'reservations' table.
type ReservationModel struct {
	ID                string    `gorm:"type:varchar(16);primaryKey"`
	PantryID          string    `gorm:"type:varchar(32);not null;index"`
	EventDate         time.Time `gorm:"not null"`
	Location          string    `gorm:"type:varchar(255);not null"`
	NameKana          string    `gorm:"type:varchar(255);not null;index"`
	NameKanji         string    `gorm:"type:varchar(255)"`
	Phone             string    `gorm:"type:varchar(32)"`
	Email             string    `gorm:"type:varchar(255)"`
	HouseholdAdults   int       `gorm:"not null"`
	HouseholdChildren int       `gorm:"not null"`
	HouseholdSize     int       `gorm:"not null"`
	RawArea           string    `gorm:"type:text"`
	NormalizedArea    string    `gorm:"type:varchar(64)"`
	Notes             string    `gorm:"type:text"`
	Status            string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
