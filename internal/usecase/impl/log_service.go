package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/session"
	"foodbank/internal/export"
	"foodbank/internal/usecase"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLogLimit = 100

//nolint:gochecknoglobals
var logExportHeader = []string{"timestamp", "level", "message", "details", "user_agent"}

type logService struct {
	logRepo repository.LogRepository
	logger  *slog.Logger
	now     func() time.Time
}

// LogServiceParams holds dependencies for LogService, injected by Fx.
type LogServiceParams struct {
	fx.In

	LogRepo repository.LogRepository
	Logger  *slog.Logger
}

// NewLogService creates a new audit log service instance
func NewLogService(params LogServiceParams) usecase.LogUsecase {
	return &logService{
		logRepo: params.LogRepo,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// Record appends one entry stamped with the caller's user agent
func (srv *logService) Record(ctx context.Context, level entity.LogLevel, message string, details any) error {
	encoded, err := encodeDetails(details)
	if err != nil {
		return err
	}

	now := srv.now()
	entry := &entity.LogEntry{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Timestamp: now,
		Level:     level,
		Message:   message,
		Details:   encoded,
		UserAgent: session.FromContext(ctx).UserAgent,
	}

	if err := srv.logRepo.Append(ctx, entry); err != nil {
		return storageError(err, "append log")
	}

	return nil
}

// Latest returns up to limit entries, newest first
func (srv *logService) Latest(ctx context.Context, level string, limit int) ([]*entity.LogEntry, error) {
	logLevel := entity.LogLevel(level)
	switch logLevel {
	case "", entity.LogLevelInfo, entity.LogLevelWarn, entity.LogLevelError:
	default:
		return nil, domainerrors.NewValidationErrorf("不明なログレベルです: %s", level)
	}

	if limit <= 0 {
		limit = defaultLogLimit
	}

	entries, err := srv.logRepo.Latest(ctx, logLevel, limit)
	if err != nil {
		return nil, storageError(err, "latest logs")
	}

	return entries, nil
}

// Export renders every entry, oldest first, as CSV
func (srv *logService) Export(ctx context.Context) (string, error) {
	entries, err := srv.logRepo.All(ctx)
	if err != nil {
		return "", storageError(err, "export logs")
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Timestamp.Format(time.RFC3339),
			string(entry.Level),
			entry.Message,
			entry.Details,
			entry.UserAgent,
		})
	}

	out, err := export.CSV(logExportHeader, rows)
	if err != nil {
		return "", errors.Wrap(err, "failed to render log export")
	}

	return out, nil
}

func encodeDetails(details any) (string, error) {
	switch v := details.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode log details")
	}

	return string(raw), nil
}
