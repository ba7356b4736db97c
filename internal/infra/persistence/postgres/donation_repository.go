package postgres

import (
	"context"

	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// Create persists a new donation.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create donation")
	}

	donation.CreatedAt = donationM.CreatedAt

	return nil
}

// FindByID retrieves a donation by id.
func (repo *donationRepository) FindByID(ctx context.Context, id string) (*entity.Donation, error) {
	var donationM model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// List returns donations newest first. A non-positive limit returns all.
func (repo *donationRepository) List(ctx context.Context, limit int) ([]*entity.Donation, error) {
	query := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var donationModels []*model.DonationModel
	if err := query.Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// SetPhotoRef records the stored photo location.
func (repo *donationRepository) SetPhotoRef(ctx context.Context, id, photoRef string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ?", id).
		Update("photo_ref", photoRef)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update donation photo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:          data.ID,
		Donator:     data.Donator,
		WeightKg:    data.WeightKg,
		Contents:    data.Contents,
		Tweet:       data.Tweet,
		Memo:        data.Memo,
		PhotoRef:    data.PhotoRef,
		InputUser:   data.InputUser,
		InputUserID: data.InputUserID,
		CreatedAt:   data.CreatedAt.UTC(),
	}
}

func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	return &model.DonationModel{
		ID:          data.ID,
		Donator:     data.Donator,
		WeightKg:    data.WeightKg,
		Contents:    data.Contents,
		Tweet:       data.Tweet,
		Memo:        data.Memo,
		PhotoRef:    data.PhotoRef,
		InputUser:   data.InputUser,
		InputUserID: data.InputUserID,
		CreatedAt:   data.CreatedAt.UTC(),
	}
}
