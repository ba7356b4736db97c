package model

import "time"

// LogEntryModel is the GORM-specific struct for the append-only 'audit_logs' table.
type LogEntryModel struct {
	ID        string    `gorm:"type:varchar(26);primaryKey"`
	Timestamp time.Time `gorm:"not null;index"`
	Level     string    `gorm:"type:varchar(10);not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Details   string    `gorm:"type:text"`
	UserAgent string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (LogEntryModel) TableName() string {
	return "audit_logs"
}
