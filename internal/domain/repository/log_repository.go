package repository

import (
	"context"

	"foodbank/internal/domain/entity"
)

// LogRepository is the append-only audit log store.
type LogRepository interface {
	// Append persists one entry.
	Append(ctx context.Context, entry *entity.LogEntry) error

	// Latest returns up to limit entries newest first. An empty level matches all.
	Latest(ctx context.Context, level entity.LogLevel, limit int) ([]*entity.LogEntry, error)

	// All returns every entry oldest first.
	All(ctx context.Context) ([]*entity.LogEntry, error)
}
