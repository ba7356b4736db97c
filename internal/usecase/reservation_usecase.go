package usecase

import (
	"context"

	"foodbank/internal/domain/entity"
)

// CreateReservationInput is the public reservation form. Household fields
// are free text such as "2" or "2名".
type CreateReservationInput struct {
	PantryID          string `json:"pantry_id"`
	NameKana          string `json:"name_kana"`
	NameKanji         string `json:"name_kanji"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	HouseholdAdults   string `json:"household_adults"`
	HouseholdChildren string `json:"household_children"`
	HouseholdSize     string `json:"household_total"`
	Area              string `json:"area"`
	Notes             string `json:"notes"`
}

// ReservationQR is a rendered check-in code.
type ReservationQR struct {
	ReservationID string `json:"reservation_id"`
	PNG           []byte `json:"png"`
}

// ReservationUsecase defines reservation lifecycle operations.
type ReservationUsecase interface {
	// CreateReservation books the current (or given) pantry and assigns a YYMMDDNNN id
	CreateReservation(ctx context.Context, input *CreateReservationInput) (*entity.Reservation, error)

	// GetReservation retrieves a reservation by id
	GetReservation(ctx context.Context, id string) (*entity.Reservation, error)

	// ListReservations returns reservations matching filter, newest first
	ListReservations(ctx context.Context, filter entity.ReservationFilter) ([]*entity.Reservation, error)

	// ListByPantry returns the reservations of one pantry in creation order
	ListByPantry(ctx context.Context, pantryID string) ([]*entity.Reservation, error)

	// CancelReservation marks a reservation cancelled and recounts its pantry
	CancelReservation(ctx context.Context, id string) (*entity.Reservation, error)

	// DeleteReservation removes a reservation and recounts its pantry
	DeleteReservation(ctx context.Context, id string) error

	// GetReservationQR renders the check-in code of a reservation
	GetReservationQR(ctx context.Context, id string) (*ReservationQR, error)

	// VerifyReservationQR resolves a scanned check-in payload to its reservation
	VerifyReservationQR(ctx context.Context, payload string) (*entity.Reservation, error)
}
