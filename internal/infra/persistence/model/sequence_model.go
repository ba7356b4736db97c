package model

// SequenceCounterModel holds one monotonic counter per id scope,
// e.g. "reservation:250412".
type SequenceCounterModel struct {
	Scope string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SequenceCounterModel) TableName() string {
	return "sequence_counters"
}
