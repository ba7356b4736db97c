package postgres

import (
	"context"

	"foodbank/internal/domain/entity"
	"foodbank/internal/domain/repository"
	"foodbank/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// logRepository implements the append-only repository.LogRepository.
type logRepository struct {
	db *gorm.DB
}

// NewLogRepository is the constructor for logRepository.
func NewLogRepository(db *gorm.DB) repository.LogRepository {
	return &logRepository{
		db: db,
	}
}

// Append stores one log entry.
func (repo *logRepository) Append(ctx context.Context, entry *entity.LogEntry) error {
	if err := repo.db.WithContext(ctx).Create(fromLogDomain(entry)).Error; err != nil {
		return errors.Wrap(err, "failed to append log entry")
	}

	return nil
}

// Latest returns up to limit entries, newest first, optionally of one level.
func (repo *logRepository) Latest(ctx context.Context, level entity.LogLevel, limit int) ([]*entity.LogEntry, error) {
	query := repo.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC")
	if level != "" {
		query = query.Where("level = ?", string(level))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entryModels []*model.LogEntryModel
	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load log entries")
	}

	return toLogDomains(entryModels), nil
}

// All returns every entry in append order.
func (repo *logRepository) All(ctx context.Context) ([]*entity.LogEntry, error) {
	var entryModels []*model.LogEntryModel

	if err := repo.db.WithContext(ctx).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load log entries")
	}

	return toLogDomains(entryModels), nil
}

func toLogDomains(models []*model.LogEntryModel) []*entity.LogEntry {
	entries := make([]*entity.LogEntry, 0, len(models))
	for _, entryM := range models {
		entries = append(entries, &entity.LogEntry{
			ID:        entryM.ID,
			Timestamp: entryM.Timestamp.UTC(),
			Level:     entity.LogLevel(entryM.Level),
			Message:   entryM.Message,
			Details:   entryM.Details,
			UserAgent: entryM.UserAgent,
		})
	}

	return entries
}

func fromLogDomain(data *entity.LogEntry) *model.LogEntryModel {
	return &model.LogEntryModel{
		ID:        data.ID,
		Timestamp: data.Timestamp.UTC(),
		Level:     string(data.Level),
		Message:   data.Message,
		Details:   data.Details,
		UserAgent: data.UserAgent,
	}
}
