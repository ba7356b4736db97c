// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"foodbank/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for pantry persistence.
var (
	// ErrPantryNotFound is returned when a pantry is not found.
	ErrPantryNotFound = errors.New("pantry not found")
	// ErrDuplicatePantry is returned when the composite pantry id already exists.
	ErrDuplicatePantry = errors.New("pantry already exists")
)

// PantryRepository defines the interface for pantry event persistence.
type PantryRepository interface {
	// Create persists a new pantry.
	Create(ctx context.Context, pantry *entity.Pantry) error

	// FindByID retrieves a pantry by its composite id.
	FindByID(ctx context.Context, pantryID string) (*entity.Pantry, error)

	// FindReservable returns the first pantry whose registration window contains now.
	FindReservable(ctx context.Context, now time.Time) (*entity.Pantry, error)

	// List returns all pantries ordered by event date, newest first.
	List(ctx context.Context) ([]*entity.Pantry, error)

	// Update overwrites the mutable fields of a pantry.
	Update(ctx context.Context, pantry *entity.Pantry) error

	// Delete physically removes a pantry.
	Delete(ctx context.Context, pantryID string) error

	// SetReservationCount stores a recounted reservation total.
	SetReservationCount(ctx context.Context, pantryID string, count int) error
}
