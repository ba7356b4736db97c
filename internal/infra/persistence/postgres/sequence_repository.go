package postgres

import (
	"context"

	"foodbank/internal/domain/repository"
	"foodbank/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sequenceRepository implements repository.SequenceRepository on a counter
// table. Next must run inside a transaction so the bump and the insert that
// consumes it commit together.
type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository is the constructor for sequenceRepository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{
		db: db,
	}
}

// Next increments the scope's counter and returns the new value, starting at 1.
func (repo *sequenceRepository) Next(ctx context.Context, scope string) (int64, error) {
	db := repo.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scope"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value": gorm.Expr("sequence_counters.value + 1"),
		}),
	}).Create(&model.SequenceCounterModel{Scope: scope, Value: 1}).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to bump sequence %s", scope)
	}

	var counterM model.SequenceCounterModel
	if err := db.Where("scope = ?", scope).First(&counterM).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to read sequence %s", scope)
	}

	return counterM.Value, nil
}

// Current returns the last issued value, or 0 when the scope is unused.
func (repo *sequenceRepository) Current(ctx context.Context, scope string) (int64, error) {
	var counterM model.SequenceCounterModel

	if err := repo.db.WithContext(ctx).
		Where("scope = ?", scope).
		First(&counterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrapf(err, "failed to read sequence %s", scope)
	}

	return counterM.Value, nil
}
