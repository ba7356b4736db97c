package model

import "time"

// RequestModel is the GORM-specific struct for the 'warehouse_requests' table.
type RequestModel struct {
	ID               string    `gorm:"type:varchar(16);primaryKey"`
	OrganizationName string    `gorm:"type:varchar(255);not null"`
	ContactPerson    string    `gorm:"type:varchar(255);not null"`
	ContactPhone     string    `gorm:"type:varchar(32)"`
	ContactEmail     string    `gorm:"type:varchar(255)"`
	BeneficiaryCount int       `gorm:"not null"`
	FoodType         string    `gorm:"type:varchar(64);not null"`
	QuantityNeeded   string    `gorm:"type:varchar(255)"`
	PickupDate       time.Time `gorm:"not null"`
	PickupTime       string    `gorm:"type:varchar(32)"`
	UsagePurpose     string    `gorm:"type:text"`
	SpecialNotes     string    `gorm:"type:text"`
	RequesterUserID  string    `gorm:"type:varchar(255);index"`
	RequesterName    string    `gorm:"type:varchar(255)"`
	Platform         string    `gorm:"type:varchar(32)"`
	Status           string    `gorm:"type:varchar(20);not null;index"`
	UpdatedBy        string    `gorm:"type:varchar(255)"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "warehouse_requests"
}
