package model

import "time"

// AdminModel is the GORM-specific struct for the 'admins' table.
type AdminModel struct {
	AdminID   string `gorm:"type:varchar(16);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role      string `gorm:"type:varchar(32);not null"`
	Status    string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
