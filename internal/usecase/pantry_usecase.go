package usecase

import (
	"context"

	"foodbank/internal/domain/entity"
)

// PantryInput carries admin-entered pantry fields. Dates use YYYY-MM-DD;
// datetimes accept YYYY-MM-DD or RFC 3339. Empty optional fields fall back
// to configured defaults on create and keep the stored value on update.
type PantryInput struct {
	PantryID         string `json:"pantry_id"`
	EventDate        string `json:"event_date"`
	Location         string `json:"location"`
	CapacityTotal    string `json:"capacity_total"`
	Status           string `json:"status"`
	Title            string `json:"title"`
	HeaderMessage    string `json:"header_message"`
	EmailMessage     string `json:"email_message"`
	ReservationStart string `json:"reservation_start"`
	ReservationEnd   string `json:"reservation_end"`
	LocationAddress  string `json:"location_address"`
	LocationAccess   string `json:"location_access"`
}

// PantryUsecase manages pantry events.
type PantryUsecase interface {
	// GetCurrentPantry returns the pantry whose registration window contains now
	GetCurrentPantry(ctx context.Context) (*entity.Pantry, error)

	// ListPantries returns every pantry, newest event first
	ListPantries(ctx context.Context) ([]*entity.Pantry, error)

	// CreatePantry derives the pantry id from date and location and stores a new pantry
	CreatePantry(ctx context.Context, input *PantryInput) (*entity.Pantry, error)

	// UpdatePantry changes the mutable fields of an existing pantry
	UpdatePantry(ctx context.Context, input *PantryInput) (*entity.Pantry, error)

	// DeletePantry removes a pantry physically
	DeletePantry(ctx context.Context, pantryID string) error
}
