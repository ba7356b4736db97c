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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new warehouse request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create request")
	}

	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a request by id.
func (repo *requestRepository) FindByID(ctx context.Context, id string) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindByRequester returns a user's requests, newest first.
func (repo *requestRepository) FindByRequester(ctx context.Context, userID string) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("requester_user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by requester")
	}

	return toRequestDomains(requestModels), nil
}

// List returns every request, newest first.
func (repo *requestRepository) List(ctx context.Context) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return toRequestDomains(requestModels), nil
}

// UpdateStatus stores a new status and the acting user.
func (repo *requestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus, updatedBy string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_by": updatedBy,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

func toRequestDomains(models []*model.RequestModel) []*entity.Request {
	requests := make([]*entity.Request, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:               data.ID,
		OrganizationName: data.OrganizationName,
		ContactPerson:    data.ContactPerson,
		ContactPhone:     data.ContactPhone,
		ContactEmail:     data.ContactEmail,
		BeneficiaryCount: data.BeneficiaryCount,
		FoodType:         data.FoodType,
		QuantityNeeded:   data.QuantityNeeded,
		PickupDate:       data.PickupDate.UTC(),
		PickupTime:       data.PickupTime,
		UsagePurpose:     data.UsagePurpose,
		SpecialNotes:     data.SpecialNotes,
		RequesterUserID:  data.RequesterUserID,
		RequesterName:    data.RequesterName,
		Platform:         data.Platform,
		Status:           entity.RequestStatus(data.Status),
		UpdatedBy:        data.UpdatedBy,
		CreatedAt:        data.CreatedAt.UTC(),
		UpdatedAt:        data.UpdatedAt.UTC(),
	}
}

func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:               data.ID,
		OrganizationName: data.OrganizationName,
		ContactPerson:    data.ContactPerson,
		ContactPhone:     data.ContactPhone,
		ContactEmail:     data.ContactEmail,
		BeneficiaryCount: data.BeneficiaryCount,
		FoodType:         data.FoodType,
		QuantityNeeded:   data.QuantityNeeded,
		PickupDate:       data.PickupDate.UTC(),
		PickupTime:       data.PickupTime,
		UsagePurpose:     data.UsagePurpose,
		SpecialNotes:     data.SpecialNotes,
		RequesterUserID:  data.RequesterUserID,
		RequesterName:    data.RequesterName,
		Platform:         data.Platform,
		Status:           string(data.Status),
		UpdatedBy:        data.UpdatedBy,
		CreatedAt:        data.CreatedAt.UTC(),
		UpdatedAt:        data.UpdatedAt.UTC(),
	}
}
