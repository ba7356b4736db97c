// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	dateLayout = "2006-01-02"

	operationCreated = "created"
	operationUpdated = "updated"
	operationDeleted = "deleted"

	donationIDPrefix = "D"
	requestIDPrefix  = "R"
	adminIDPrefix    = "admin"
	adminScope       = "admin"
)

// formatID joins a prefix and a sequence value padded to three digits.
func formatID(prefix string, sequence int64) string {
	return fmt.Sprintf("%s%03d", prefix, sequence)
}

// nextID takes the next value of scope and formats it behind prefix.
// It must be called with a transaction-bound sequence repository.
func nextID(ctx context.Context, sequences repository.SequenceRepository, scope, prefix string) (string, error) {
	value, err := sequences.Next(ctx, scope)
	if err != nil {
		return "", domainerrors.NewStorageError(err, "sequence "+scope)
	}

	return formatID(prefix, value), nil
}

// missingFields returns the names whose values are blank, in argument order.
// pairs alternates name and value.
func missingFields(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}

	return missing
}

// parseDate reads YYYY-MM-DD in loc.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", raw)
	}

	return t, nil
}

// parseDateTime reads YYYY-MM-DD (midnight in loc) or RFC 3339.
func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t.In(loc), nil
	}

	return parseDate(trimmed, loc)
}

// storageError classifies an unexpected repository failure. Errors that
// already carry a kind pass through.
func storageError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewStorageError(err, details)
}

// recordNotifier publishes record change events after a commit. Delivery
// is best effort: failures are logged and never fail the caller.
type recordNotifier struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

func newRecordNotifier(publisher service.EventPublisher, metrics service.MetricsRecorder, logger *slog.Logger) *recordNotifier {
	return &recordNotifier{
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

func (n *recordNotifier) notify(ctx context.Context, kind, recordID, operation string) {
	if n == nil {
		return
	}

	if operation == operationCreated && n.metrics != nil {
		n.metrics.ObserveRecordCreated(kind)
	}

	if n.publisher == nil {
		return
	}

	event := &service.RecordEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		RecordKind: kind,
		RecordID:   recordID,
		Operation:  operation,
		OccurredAt: n.now().UTC().Format(time.RFC3339),
	}

	if err := n.publisher.PublishRecordEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish record event",
			slog.String("kind", kind),
			slog.String("recordID", recordID),
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}

// auditor appends domain events to the persisted log store. A failure to
// write the audit row is logged and swallowed.
type auditor struct {
	logs   usecase.LogUsecase
	logger *slog.Logger
}

func (a *auditor) record(ctx context.Context, level entity.LogLevel, message string, details any) {
	if a == nil || a.logs == nil {
		return
	}

	if err := a.logs.Record(ctx, level, message, details); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Failed to append audit log",
			slog.String("message", message),
			slog.Any("error", err),
		)
	}
}
