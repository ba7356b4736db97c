package repository

import (
	"context"

	"foodbank/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDonationNotFound is returned when a donation is not found.
var ErrDonationNotFound = errors.New("donation not found")

// DonationRepository defines food-drive donation persistence.
type DonationRepository interface {
	// Create appends a donation. The id must already be assigned.
	Create(ctx context.Context, donation *entity.Donation) error

	// FindByID retrieves a donation by id.
	FindByID(ctx context.Context, id string) (*entity.Donation, error)

	// List returns donations newest first, at most limit rows when limit > 0.
	List(ctx context.Context, limit int) ([]*entity.Donation, error)

	// SetPhotoRef attaches a stored photo to a donation.
	SetPhotoRef(ctx context.Context, id, photoRef string) error
}
