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

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// Create persists a new reservation. The id must already be assigned.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create reservation")
	}

	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// FindByID retrieves a reservation by id.
func (repo *reservationRepository) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return toReservationDomain(&reservationM), nil
}

// FindByPantry returns every reservation of a pantry in creation order.
func (repo *reservationRepository) FindByPantry(ctx context.Context, pantryID string) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("pantry_id = ?", pantryID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by pantry")
	}

	return toReservationDomains(reservationModels), nil
}

// Find applies the filter and returns matches, newest first.
func (repo *reservationRepository) Find(ctx context.Context, filter entity.ReservationFilter) ([]*entity.Reservation, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReservationModel{})

	if filter.PantryID != "" {
		query = query.Where("pantry_id = ?", filter.PantryID)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.NameQuery != "" {
		like := "%" + filter.NameQuery + "%"
		query = query.Where("(name_kana LIKE ? OR name_kanji LIKE ?)", like, like)
	}
	if !filter.From.IsZero() {
		query = query.Where("event_date >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		query = query.Where("event_date <= ?", filter.To.UTC())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var reservationModels []*model.ReservationModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations")
	}

	return toReservationDomains(reservationModels), nil
}

// All returns the full reservation snapshot in creation order.
func (repo *reservationRepository) All(ctx context.Context) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load reservations")
	}

	return toReservationDomains(reservationModels), nil
}

// UpdateStatus changes the reservation status.
func (repo *reservationRepository) UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reservation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// Delete physically removes a reservation.
func (repo *reservationRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReservationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// CountActiveByPantry counts confirmed reservations of a pantry.
func (repo *reservationRepository) CountActiveByPantry(ctx context.Context, pantryID string) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("pantry_id = ? AND status = ?", pantryID, string(entity.ReservationStatusConfirmed)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reservations")
	}

	return int(count), nil
}

func toReservationDomains(models []*model.ReservationModel) []*entity.Reservation {
	reservations := make([]*entity.Reservation, 0, len(models))
	for _, reservationM := range models {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations
}

func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:                data.ID,
		PantryID:          data.PantryID,
		EventDate:         data.EventDate.UTC(),
		Location:          data.Location,
		NameKana:          data.NameKana,
		NameKanji:         data.NameKanji,
		Phone:             data.Phone,
		Email:             data.Email,
		HouseholdAdults:   data.HouseholdAdults,
		HouseholdChildren: data.HouseholdChildren,
		HouseholdSize:     data.HouseholdSize,
		RawArea:           data.RawArea,
		NormalizedArea:    data.NormalizedArea,
		Notes:             data.Notes,
		Status:            entity.ReservationStatus(data.Status),
		CreatedAt:         data.CreatedAt.UTC(),
		UpdatedAt:         data.UpdatedAt.UTC(),
	}
}

func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:                data.ID,
		PantryID:          data.PantryID,
		EventDate:         data.EventDate.UTC(),
		Location:          data.Location,
		NameKana:          data.NameKana,
		NameKanji:         data.NameKanji,
		Phone:             data.Phone,
		Email:             data.Email,
		HouseholdAdults:   data.HouseholdAdults,
		HouseholdChildren: data.HouseholdChildren,
		HouseholdSize:     data.HouseholdSize,
		RawArea:           data.RawArea,
		NormalizedArea:    data.NormalizedArea,
		Notes:             data.Notes,
		Status:            string(data.Status),
		CreatedAt:         data.CreatedAt.UTC(),
		UpdatedAt:         data.UpdatedAt.UTC(),
	}
}
