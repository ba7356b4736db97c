// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pantryRepository implements the repository.PantryRepository interface.
type pantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository is the constructor for pantryRepository.
func NewPantryRepository(db *gorm.DB) repository.PantryRepository {
	return &pantryRepository{
		db: db,
	}
}

// Create persists a new pantry.
func (repo *pantryRepository) Create(ctx context.Context, pantry *entity.Pantry) error {
	pantryM := fromPantryDomain(pantry)

	if err := repo.db.WithContext(ctx).Create(pantryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePantry
		}

		return domainerrors.NewStorageError(err, "failed to create pantry")
	}

	pantry.CreatedAt = pantryM.CreatedAt
	pantry.UpdatedAt = pantryM.UpdatedAt

	return nil
}

// FindByID retrieves a pantry by its composite id.
func (repo *pantryRepository) FindByID(ctx context.Context, pantryID string) (*entity.Pantry, error) {
	var pantryM model.PantryModel

	if err := repo.db.WithContext(ctx).
		Where("pantry_id = ?", pantryID).
		First(&pantryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPantryNotFound
		}

		return nil, errors.Wrap(err, "failed to find pantry by ID")
	}

	return toPantryDomain(&pantryM), nil
}

// FindReservable returns the earliest non-closed pantry whose registration
// window contains now.
func (repo *pantryRepository) FindReservable(ctx context.Context, now time.Time) (*entity.Pantry, error) {
	var pantryM model.PantryModel

	if err := repo.db.WithContext(ctx).
		Where("status <> ? AND reservation_start <= ? AND reservation_end >= ?",
			string(entity.PantryStatusClosed), now.UTC(), now.UTC()).
		Order("event_date ASC").
		Order("pantry_id ASC").
		First(&pantryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPantryNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservable pantry")
	}

	return toPantryDomain(&pantryM), nil
}

// List returns every pantry, newest event first.
func (repo *pantryRepository) List(ctx context.Context) ([]*entity.Pantry, error) {
	var pantryModels []*model.PantryModel

	if err := repo.db.WithContext(ctx).
		Order("event_date DESC").
		Order("pantry_id ASC").
		Find(&pantryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pantries")
	}

	pantries := make([]*entity.Pantry, 0, len(pantryModels))
	for _, pantryM := range pantryModels {
		pantries = append(pantries, toPantryDomain(pantryM))
	}

	return pantries, nil
}

// Update overwrites the mutable pantry columns.
func (repo *pantryRepository) Update(ctx context.Context, pantry *entity.Pantry) error {
	pantryM := fromPantryDomain(pantry)

	result := repo.db.WithContext(ctx).
		Model(&model.PantryModel{}).
		Where("pantry_id = ?", pantry.PantryID).
		Select("capacity_total", "status", "title", "header_message", "email_message",
			"reservation_start", "reservation_end", "location_address", "location_access", "updated_at").
		Updates(pantryM)

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to update pantry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPantryNotFound
	}

	pantry.UpdatedAt = pantryM.UpdatedAt

	return nil
}

// Delete physically removes a pantry.
func (repo *pantryRepository) Delete(ctx context.Context, pantryID string) error {
	result := repo.db.WithContext(ctx).
		Where("pantry_id = ?", pantryID).
		Delete(&model.PantryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pantry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPantryNotFound
	}

	return nil
}

// SetReservationCount stores a recounted reservation total.
func (repo *pantryRepository) SetReservationCount(ctx context.Context, pantryID string, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PantryModel{}).
		Where("pantry_id = ?", pantryID).
		Update("reservation_count", count)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reservation count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPantryNotFound
	}

	return nil
}

func toPantryDomain(data *model.PantryModel) *entity.Pantry {
	if data == nil {
		return nil
	}

	return &entity.Pantry{
		PantryID:         data.PantryID,
		EventDate:        data.EventDate,
		Location:         data.Location,
		CapacityTotal:    data.CapacityTotal,
		ReservationCount: data.ReservationCount,
		Status:           entity.PantryStatus(data.Status),
		Title:            data.Title,
		HeaderMessage:    data.HeaderMessage,
		EmailMessage:     data.EmailMessage,
		ReservationStart: data.ReservationStart.UTC(),
		ReservationEnd:   data.ReservationEnd.UTC(),
		LocationAddress:  data.LocationAddress,
		LocationAccess:   data.LocationAccess,
		CreatedAt:        data.CreatedAt.UTC(),
		UpdatedAt:        data.UpdatedAt.UTC(),
	}
}

func fromPantryDomain(data *entity.Pantry) *model.PantryModel {
	if data == nil {
		return nil
	}

	return &model.PantryModel{
		PantryID:         data.PantryID,
		EventDate:        data.EventDate.UTC(),
		Location:         data.Location,
		CapacityTotal:    data.CapacityTotal,
		ReservationCount: data.ReservationCount,
		Status:           string(data.Status),
		Title:            data.Title,
		HeaderMessage:    data.HeaderMessage,
		EmailMessage:     data.EmailMessage,
		ReservationStart: data.ReservationStart.UTC(),
		ReservationEnd:   data.ReservationEnd.UTC(),
		LocationAddress:  data.LocationAddress,
		LocationAccess:   data.LocationAccess,
		CreatedAt:        data.CreatedAt.UTC(),
		UpdatedAt:        data.UpdatedAt.UTC(),
	}
}
