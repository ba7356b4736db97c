package entity

import "time"

// PantryView is the derived per-pantry row.
type PantryView struct {
	PantryID         string    `json:"pantry_id"`
	EventDate        time.Time `json:"event_date"`
	Location         string    `json:"location"`
	ReservationCount int       `json:"reservation_count"`
	UniqueUsers      int       `json:"unique_users"`
	LastUpdated      time.Time `json:"last_updated"`
}

// UserView is the derived per-person row, keyed by kana name.
type UserView struct {
	NameKana      string    `json:"name_kana"`
	TotalVisits   int       `json:"total_visits"`
	FirstVisit    time.Time `json:"first_visit"`
	LastVisit     time.Time `json:"last_visit"`
	Areas         string    `json:"areas"`
	HouseholdSize int       `json:"household_size"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Dashboard metric categories.
const (
	MetricCategoryBasic     = "basic"
	MetricCategoryHousehold = "household"
	MetricCategoryLocation  = "location"
)

// DashboardMetric is one scalar row of the dashboard view.
type DashboardMetric struct {
	Metric      string    `json:"metric"`
	Value       int       `json:"value"`
	Category    string    `json:"category"`
	LastUpdated time.Time `json:"last_updated"`
}

// Views bundles one full materialization.
type Views struct {
	Pantries  []*PantryView      `json:"pantries"`
	Users     []*UserView        `json:"users"`
	Dashboard []*DashboardMetric `json:"dashboard"`
}
