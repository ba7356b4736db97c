package entity

import "time"

// ReservationStatus is the lifecycle of a pantry reservation.
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation is one household's booking for a pantry event. It is the
// record the aggregate views are rebuilt from.
type Reservation struct {
	ID                string            `json:"reservation_id"`
	PantryID          string            `json:"pantry_id"`
	EventDate         time.Time         `json:"event_date"`
	Location          string            `json:"location"`
	NameKana          string            `json:"name_kana"`
	NameKanji         string            `json:"name_kanji"`
	Phone             string            `json:"phone"`
	Email             string            `json:"email"`
	HouseholdAdults   int               `json:"household_adults"`
	HouseholdChildren int               `json:"household_children"`
	HouseholdSize     int               `json:"household_total"`
	RawArea           string            `json:"area"`
	NormalizedArea    string            `json:"normalized_area"`
	Notes             string            `json:"notes"`
	Status            ReservationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsActive reports whether the reservation still counts toward views.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusConfirmed
}

// ReservationFilter narrows reservation listings. Zero values match all.
type ReservationFilter struct {
	PantryID  string
	Location  string
	NameQuery string
	From      time.Time
	To        time.Time
	Status    ReservationStatus
}
