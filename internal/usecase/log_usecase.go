package usecase

import (
	"context"

	"foodbank/internal/domain/entity"
)

// LogUsecase writes and reads the persisted audit log.
type LogUsecase interface {
	// Record appends an entry; details is encoded as JSON
	Record(ctx context.Context, level entity.LogLevel, message string, details any) error

	// Latest returns up to limit entries, newest first, optionally of one level
	Latest(ctx context.Context, level string, limit int) ([]*entity.LogEntry, error)

	// Export renders the full log as CSV text
	Export(ctx context.Context) (string, error)
}
