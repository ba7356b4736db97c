package model

import "time"

// DonationModel is the GORM-specific struct for the 'donations' table.
type DonationModel struct {
	ID          string    `gorm:"type:varchar(16);primaryKey"`
	Donator     string    `gorm:"type:varchar(255);not null"`
	WeightKg    float64   `gorm:"not null"`
	Contents    string    `gorm:"type:text"`
	Tweet       string    `gorm:"type:varchar(10)"`
	Memo        string    `gorm:"type:text"`
	PhotoRef    string    `gorm:"type:text"`
	InputUser   string    `gorm:"type:varchar(255)"`
	InputUserID string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
