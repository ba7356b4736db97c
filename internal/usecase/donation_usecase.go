package usecase

import (
	"context"

	"foodbank/internal/domain/entity"
)

// CreateDonationInput is the food-drive intake form. Photo holds the
// decoded image bytes, if any.
type CreateDonationInput struct {
	Donator          string
	OtherDonator     string
	Weight           string
	Contents         string
	Tweet            string
	Memo             string
	Photo            []byte
	PhotoContentType string
}

// DonationUsecase records food-drive donations.
type DonationUsecase interface {
	// CreateDonation stores a donation; a photo upload failure does not fail the call
	CreateDonation(ctx context.Context, input *CreateDonationInput) (*entity.Donation, error)

	// ListDonations returns donations newest first, at most limit when positive
	ListDonations(ctx context.Context, limit int) ([]*entity.Donation, error)
}
