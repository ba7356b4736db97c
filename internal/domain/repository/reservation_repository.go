package repository

import (
	"context"

	"foodbank/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReservationNotFound is returned when a reservation is not found.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository is the record store for pantry reservations.
type ReservationRepository interface {
	// Create appends a reservation. The id must already be assigned.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByID retrieves a reservation by id.
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)

	// FindByPantry returns every reservation of one pantry in creation order.
	FindByPantry(ctx context.Context, pantryID string) ([]*entity.Reservation, error)

	// Find returns reservations matching the filter, newest first.
	Find(ctx context.Context, filter entity.ReservationFilter) ([]*entity.Reservation, error)

	// All returns the full snapshot in creation order.
	All(ctx context.Context) ([]*entity.Reservation, error)

	// UpdateStatus changes the status of one reservation.
	UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus) error

	// Delete physically removes a reservation.
	Delete(ctx context.Context, id string) error

	// CountActiveByPantry counts confirmed reservations of a pantry.
	CountActiveByPantry(ctx context.Context, pantryID string) (int, error)
}
