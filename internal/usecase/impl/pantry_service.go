package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"foodbank/config"
	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pantryService struct {
	txManager  repository.TransactionManager
	pantryRepo repository.PantryRepository
	config     *config.Config
	notifier   *recordNotifier
	audit      *auditor
	logger     *slog.Logger
	now        func() time.Time
}

// PantryServiceParams holds dependencies for PantryService, injected by Fx.
type PantryServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PantryRepo repository.PantryRepository
	Publisher  service.EventPublisher
	Metrics    service.MetricsRecorder
	Logs       usecase.LogUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPantryService creates a new pantry service instance
func NewPantryService(params PantryServiceParams) usecase.PantryUsecase {
	return &pantryService{
		txManager:  params.TxManager,
		pantryRepo: params.PantryRepo,
		config:     params.Config,
		notifier:   newRecordNotifier(params.Publisher, params.Metrics, params.Logger),
		audit:      &auditor{logs: params.Logs, logger: params.Logger},
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *pantryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrentPantry returns the pantry open for registration, reported as active
func (srv *pantryService) GetCurrentPantry(ctx context.Context) (*entity.Pantry, error) {
	pantry, err := srv.pantryRepo.FindReservable(ctx, srv.now())
	if err != nil {
		if errors.Is(err, repository.ErrPantryNotFound) {
			return nil, domainerrors.ErrNoActivePantry
		}

		return nil, storageError(err, "find reservable pantry")
	}

	pantry.Status = entity.PantryStatusActive

	return pantry, nil
}

// ListPantries returns every pantry, newest event first
func (srv *pantryService) ListPantries(ctx context.Context) ([]*entity.Pantry, error) {
	pantries, err := srv.pantryRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, "list pantries")
	}

	return pantries, nil
}

// CreatePantry stores a new upcoming pantry
func (srv *pantryService) CreatePantry(ctx context.Context, input *usecase.PantryInput) (*entity.Pantry, error) {
	if missing := missingFields("event_date", input.EventDate, "location", input.Location); len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	loc := srv.config.Location()
	eventDate, err := parseDateTime(input.EventDate, loc)
	if err != nil {
		return nil, domainerrors.NewValidationErrorf("開催日の形式が正しくありません: %s", input.EventDate)
	}
	eventDate = time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, loc)

	pantry := srv.newPantry(eventDate, strings.TrimSpace(input.Location))
	if err := applyPantryInput(pantry, input, loc); err != nil {
		return nil, err
	}
	// New pantries always start upcoming; the window decides reservability.
	pantry.Status = entity.PantryStatusUpcoming

	if err := srv.pantryRepo.Create(ctx, pantry); err != nil {
		if errors.Is(err, repository.ErrDuplicatePantry) {
			return nil, domainerrors.ErrPantryAlreadyExists.WithDetails(pantry.PantryID)
		}

		return nil, storageError(err, "create pantry")
	}

	srv.log(ctx).Info("Pantry created", slog.String("pantryID", pantry.PantryID))
	srv.audit.record(ctx, entity.LogLevelInfo, "Pantry Created", map[string]any{
		"pantry_id":  pantry.PantryID,
		"location":   pantry.Location,
		"event_date": pantry.EventDate.In(loc).Format(dateLayout),
	})
	srv.notifier.notify(ctx, service.RecordKindPantry, pantry.PantryID, operationCreated)

	return pantry, nil
}

// UpdatePantry changes the mutable fields of an existing pantry. The
// event date and location are part of the id and cannot change.
func (srv *pantryService) UpdatePantry(ctx context.Context, input *usecase.PantryInput) (*entity.Pantry, error) {
	if strings.TrimSpace(input.PantryID) == "" {
		return nil, domainerrors.NewValidationError("pantry_id")
	}

	var updated *entity.Pantry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pantryRepo := repoFactory.NewPantryRepository()

		pantry, err := pantryRepo.FindByID(ctx, input.PantryID)
		if err != nil {
			if errors.Is(err, repository.ErrPantryNotFound) {
				return domainerrors.ErrPantryNotFound.WithDetails(input.PantryID)
			}

			return storageError(err, "find pantry")
		}

		if err := applyPantryInput(pantry, input, srv.config.Location()); err != nil {
			return err
		}
		pantry.UpdatedAt = srv.now()

		if err := pantryRepo.Update(ctx, pantry); err != nil {
			return storageError(err, "update pantry")
		}

		updated = pantry

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.record(ctx, entity.LogLevelInfo, "Pantry Updated", map[string]any{
		"pantry_id": updated.PantryID,
		"changes":   input,
	})
	srv.notifier.notify(ctx, service.RecordKindPantry, updated.PantryID, operationUpdated)

	return updated, nil
}

// DeletePantry removes a pantry physically. Its reservations are kept.
func (srv *pantryService) DeletePantry(ctx context.Context, pantryID string) error {
	if strings.TrimSpace(pantryID) == "" {
		return domainerrors.NewValidationError("pantry_id")
	}

	if err := srv.pantryRepo.Delete(ctx, pantryID); err != nil {
		if errors.Is(err, repository.ErrPantryNotFound) {
			return domainerrors.ErrPantryNotFound.WithDetails(pantryID)
		}

		return storageError(err, "delete pantry")
	}

	srv.audit.record(ctx, entity.LogLevelInfo, "Pantry Deleted", map[string]any{"pantry_id": pantryID})
	srv.notifier.notify(ctx, service.RecordKindPantry, pantryID, operationDeleted)

	return nil
}

// newPantry builds a pantry with the configured capacity and a window
// opening WindowOpenDays and closing WindowCloseDays before the event.
func (srv *pantryService) newPantry(eventDate time.Time, location string) *entity.Pantry {
	return defaultPantry(srv.config.Pantry, eventDate, location, srv.now())
}

func defaultPantry(cfg *config.PantryConfig, eventDate time.Time, location string, now time.Time) *entity.Pantry {
	return &entity.Pantry{
		PantryID:         entity.PantryID(eventDate, location),
		EventDate:        eventDate,
		Location:         location,
		CapacityTotal:    cfg.DefaultCapacity,
		Status:           entity.PantryStatusUpcoming,
		Title:            fmt.Sprintf("%d月フードパントリー（%s）", int(eventDate.Month()), location),
		ReservationStart: eventDate.AddDate(0, 0, -cfg.WindowOpenDays),
		ReservationEnd:   endOfDay(eventDate.AddDate(0, 0, -cfg.WindowCloseDays)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// applyPantryInput copies the non-empty optional fields of input onto pantry.
func applyPantryInput(pantry *entity.Pantry, input *usecase.PantryInput, loc *time.Location) error {
	var invalid []string

	if raw := strings.TrimSpace(input.CapacityTotal); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity < 0 {
			invalid = append(invalid, "capacity_total")
		} else {
			pantry.CapacityTotal = capacity
		}
	}

	if raw := strings.TrimSpace(input.Status); raw != "" {
		status := entity.PantryStatus(raw)
		if !status.IsValid() {
			invalid = append(invalid, "status")
		} else {
			pantry.Status = status
		}
	}

	if raw := strings.TrimSpace(input.ReservationStart); raw != "" {
		start, err := parseDateTime(raw, loc)
		if err != nil {
			invalid = append(invalid, "reservation_start")
		} else {
			pantry.ReservationStart = start
		}
	}

	if raw := strings.TrimSpace(input.ReservationEnd); raw != "" {
		end, err := parseDateTime(raw, loc)
		if err != nil {
			invalid = append(invalid, "reservation_end")
		} else {
			pantry.ReservationEnd = endOfDayIfDate(raw, end)
		}
	}

	if len(invalid) > 0 {
		return domainerrors.NewValidationErrorf("入力内容が正しくありません: %s", strings.Join(invalid, ", "))
	}

	if pantry.ReservationEnd.Before(pantry.ReservationStart) {
		return domainerrors.NewValidationErrorf("予約終了日時は予約開始日時より後にしてください")
	}

	setIfPresent(&pantry.Title, input.Title)
	setIfPresent(&pantry.HeaderMessage, input.HeaderMessage)
	setIfPresent(&pantry.EmailMessage, input.EmailMessage)
	setIfPresent(&pantry.LocationAddress, input.LocationAddress)
	setIfPresent(&pantry.LocationAccess, input.LocationAccess)

	return nil
}

// endOfDayIfDate makes a date-only window end inclusive of that whole day.
func endOfDayIfDate(raw string, t time.Time) time.Time {
	if len(strings.TrimSpace(raw)) == len(dateLayout) {
		return endOfDay(t)
	}

	return t
}

// endOfDay returns the last instant of the day starting at midnight t.
func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Nanosecond)
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}
