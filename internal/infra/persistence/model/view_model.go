package model

import "time"

// PantryViewModel mirrors the derived 'view_pantries' table.
type PantryViewModel struct {
	PantryID         string    `gorm:"type:varchar(32);primaryKey"`
	Position         int       `gorm:"not null"`
	EventDate        time.Time `gorm:"not null"`
	Location         string    `gorm:"type:varchar(255);not null"`
	ReservationCount int       `gorm:"not null"`
	UniqueUsers      int       `gorm:"not null"`
	LastUpdated      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PantryViewModel) TableName() string {
	return "view_pantries"
}

// UserViewModel mirrors the derived 'view_users' table.
type UserViewModel struct {
	NameKana      string    `gorm:"type:varchar(255);primaryKey"`
	Position      int       `gorm:"not null"`
	TotalVisits   int       `gorm:"not null"`
	FirstVisit    time.Time `gorm:"not null"`
	LastVisit     time.Time `gorm:"not null"`
	Areas         string    `gorm:"type:text"`
	HouseholdSize int       `gorm:"not null"`
	LastUpdated   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserViewModel) TableName() string {
	return "view_users"
}

// DashboardMetricModel mirrors the derived 'view_dashboard' table.
type DashboardMetricModel struct {
	Metric      string    `gorm:"type:varchar(255);primaryKey"`
	Position    int       `gorm:"not null"`
	Value       int       `gorm:"not null"`
	Category    string    `gorm:"type:varchar(32);not null"`
	LastUpdated time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DashboardMetricModel) TableName() string {
	return "view_dashboard"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&PantryModel{},
		&ReservationModel{},
		&DonationModel{},
		&RequestModel{},
		&SequenceCounterModel{},
		&LogEntryModel{},
		&AdminModel{},
		&PantryViewModel{},
		&UserViewModel{},
		&DashboardMetricModel{},
	}
}
