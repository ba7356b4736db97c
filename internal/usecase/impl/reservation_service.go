package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foodbank/config"
	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/normalize"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const reservationScopePrefix = "reservation:"

type reservationService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	qrcodeService   service.QRCodeService
	normalizer      *normalize.Normalizer
	config          *config.Config
	notifier        *recordNotifier
	audit           *auditor
	logger          *slog.Logger
	now             func() time.Time
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	QRCodeService   service.QRCodeService
	Normalizer      *normalize.Normalizer
	Publisher       service.EventPublisher
	Metrics         service.MetricsRecorder
	Logs            usecase.LogUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReservationService creates a new reservation service instance
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		qrcodeService:   params.QRCodeService,
		normalizer:      params.Normalizer,
		config:          params.Config,
		notifier:        newRecordNotifier(params.Publisher, params.Metrics, params.Logger),
		audit:           &auditor{logs: params.Logs, logger: params.Logger},
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReservation books a pantry. Without a pantry id the pantry whose
// window contains now is used. The id, the insert and the pantry recount
// share one transaction.
func (srv *reservationService) CreateReservation(ctx context.Context, input *usecase.CreateReservationInput) (*entity.Reservation, error) {
	missing := missingFields("name_kana", input.NameKana)
	if strings.TrimSpace(input.HouseholdAdults+input.HouseholdChildren+input.HouseholdSize) == "" {
		missing = append(missing, "household_total")
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	now := srv.now()
	loc := srv.config.Location()
	reservation := &entity.Reservation{
		NameKana:       normalize.NormalizeKanaName(input.NameKana),
		NameKanji:      strings.TrimSpace(input.NameKanji),
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.TrimSpace(input.Email),
		RawArea:        strings.TrimSpace(input.Area),
		NormalizedArea: srv.normalizer.NormalizeAddress(input.Area),
		Notes:          strings.TrimSpace(input.Notes),
		Status:         entity.ReservationStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	srv.applyHousehold(reservation, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pantryRepo := repoFactory.NewPantryRepository()
		reservationRepo := repoFactory.NewReservationRepository()

		pantry, err := srv.resolvePantry(ctx, pantryRepo, input.PantryID, now)
		if err != nil {
			return err
		}

		count, err := reservationRepo.CountActiveByPantry(ctx, pantry.PantryID)
		if err != nil {
			return storageError(err, "count reservations")
		}
		pantry.ReservationCount = count
		if !pantry.HasCapacity() {
			return domainerrors.ErrPantryFull.WithDetails(pantry.PantryID)
		}

		prefix := entity.DatePrefix(pantry.EventDate.In(loc))
		id, err := nextID(ctx, repoFactory.NewSequenceRepository(), reservationScopePrefix+prefix, prefix)
		if err != nil {
			return err
		}

		reservation.ID = id
		reservation.PantryID = pantry.PantryID
		reservation.EventDate = pantry.EventDate
		reservation.Location = pantry.Location

		if err := reservationRepo.Create(ctx, reservation); err != nil {
			return storageError(err, "create reservation")
		}

		if err := pantryRepo.SetReservationCount(ctx, pantry.PantryID, count+1); err != nil {
			return storageError(err, "update reservation count")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create reservation", slog.String("nameKana", reservation.NameKana), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Reservation created",
		slog.String("reservationID", reservation.ID),
		slog.String("pantryID", reservation.PantryID),
	)
	srv.audit.record(ctx, entity.LogLevelInfo, "Reservation Created", map[string]any{
		"reservation_id":  reservation.ID,
		"pantry_id":       reservation.PantryID,
		"name_kana":       reservation.NameKana,
		"household_total": reservation.HouseholdSize,
	})
	srv.notifier.notify(ctx, service.RecordKindReservation, reservation.ID, operationCreated)

	return reservation, nil
}

// resolvePantry returns the requested pantry when it is open, or the pantry
// open now when no id is given.
func (srv *reservationService) resolvePantry(ctx context.Context, pantryRepo repository.PantryRepository, pantryID string, now time.Time) (*entity.Pantry, error) {
	if strings.TrimSpace(pantryID) == "" {
		pantry, err := pantryRepo.FindReservable(ctx, now)
		if errors.Is(err, repository.ErrPantryNotFound) {
			return nil, domainerrors.ErrNoActivePantry
		}
		if err != nil {
			return nil, storageError(err, "find reservable pantry")
		}

		return pantry, nil
	}

	pantry, err := pantryRepo.FindByID(ctx, pantryID)
	if errors.Is(err, repository.ErrPantryNotFound) {
		return nil, domainerrors.ErrPantryNotFound.WithDetails(pantryID)
	}
	if err != nil {
		return nil, storageError(err, "find pantry")
	}

	if pantry.Status == entity.PantryStatusClosed || !pantry.IsReservable(now) {
		return nil, domainerrors.ErrNoActivePantry.WithDetails(pantryID)
	}

	return pantry, nil
}

// applyHousehold fills the household columns. An explicit total wins;
// otherwise adults and children are summed. The total is never below the
// configured default.
func (srv *reservationService) applyHousehold(reservation *entity.Reservation, input *usecase.CreateReservationInput) {
	adults, _ := normalize.ParseCount(input.HouseholdAdults)
	children, _ := normalize.ParseCount(input.HouseholdChildren)
	reservation.HouseholdAdults = adults
	reservation.HouseholdChildren = children

	size := adults + children
	if strings.TrimSpace(input.HouseholdSize) != "" {
		size = normalize.ParseHouseholdSize(input.HouseholdSize)
	}

	reservation.HouseholdSize = max(size, srv.config.Pantry.DefaultHouseholdSize, normalize.DefaultHouseholdSize)
}

// GetReservation retrieves a reservation by id
func (srv *reservationService) GetReservation(ctx context.Context, id string) (*entity.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.NewValidationError("reservation_id")
	}

	reservation, err := srv.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapReservationError(err, id)
	}

	return reservation, nil
}

// ListReservations returns reservations matching filter, newest first
func (srv *reservationService) ListReservations(ctx context.Context, filter entity.ReservationFilter) ([]*entity.Reservation, error) {
	switch filter.Status {
	case "", entity.ReservationStatusConfirmed, entity.ReservationStatusCancelled:
	default:
		return nil, domainerrors.NewValidationErrorf("不明な予約ステータスです: %s", filter.Status)
	}

	reservations, err := srv.reservationRepo.Find(ctx, filter)
	if err != nil {
		return nil, storageError(err, "find reservations")
	}

	return reservations, nil
}

// ListByPantry returns the reservations of one pantry in creation order
func (srv *reservationService) ListByPantry(ctx context.Context, pantryID string) ([]*entity.Reservation, error) {
	if strings.TrimSpace(pantryID) == "" {
		return nil, domainerrors.NewValidationError("pantry_id")
	}

	reservations, err := srv.reservationRepo.FindByPantry(ctx, pantryID)
	if err != nil {
		return nil, storageError(err, "find reservations by pantry")
	}

	return reservations, nil
}

// CancelReservation tombstones a reservation and recounts its pantry
func (srv *reservationService) CancelReservation(ctx context.Context, id string) (*entity.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.NewValidationError("reservation_id")
	}

	var cancelled *entity.Reservation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.NewReservationRepository()

		reservation, err := reservationRepo.FindByID(ctx, id)
		if err != nil {
			return mapReservationError(err, id)
		}
		if !reservation.IsActive() {
			return domainerrors.ErrReservationCancelled.WithDetails(id)
		}

		if err := reservationRepo.UpdateStatus(ctx, id, entity.ReservationStatusCancelled); err != nil {
			return mapReservationError(err, id)
		}
		reservation.Status = entity.ReservationStatusCancelled
		reservation.UpdatedAt = srv.now()

		if err := recountPantry(ctx, repoFactory, reservation.PantryID); err != nil {
			return err
		}

		cancelled = reservation

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.record(ctx, entity.LogLevelInfo, "Reservation Cancelled", map[string]any{
		"reservation_id": id,
		"pantry_id":      cancelled.PantryID,
	})
	srv.notifier.notify(ctx, service.RecordKindReservation, id, operationUpdated)

	return cancelled, nil
}

// DeleteReservation removes a reservation physically and recounts its pantry.
// The sequence counter is untouched, so the id is never issued again.
func (srv *reservationService) DeleteReservation(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.NewValidationError("reservation_id")
	}

	var pantryID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.NewReservationRepository()

		reservation, err := reservationRepo.FindByID(ctx, id)
		if err != nil {
			return mapReservationError(err, id)
		}

		if err := reservationRepo.Delete(ctx, id); err != nil {
			return mapReservationError(err, id)
		}

		pantryID = reservation.PantryID

		return recountPantry(ctx, repoFactory, pantryID)
	})
	if err != nil {
		return err
	}

	srv.audit.record(ctx, entity.LogLevelInfo, "Reservation Deleted", map[string]any{
		"reservation_id": id,
		"pantry_id":      pantryID,
	})
	srv.notifier.notify(ctx, service.RecordKindReservation, id, operationDeleted)

	return nil
}

// GetReservationQR renders the check-in code of a confirmed reservation
func (srv *reservationService) GetReservationQR(ctx context.Context, id string) (*usecase.ReservationQR, error) {
	reservation, err := srv.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.IsActive() {
		return nil, domainerrors.ErrReservationCancelled.WithDetails(id)
	}

	png, err := srv.qrcodeService.GenerateReservationQR(reservation.ID, reservation.PantryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reservation QR")
	}

	return &usecase.ReservationQR{ReservationID: reservation.ID, PNG: png}, nil
}

// VerifyReservationQR resolves a scanned payload. The ticket must name the
// reservation's own pantry.
func (srv *reservationService) VerifyReservationQR(ctx context.Context, payload string) (*entity.Reservation, error) {
	ticket, err := srv.qrcodeService.ParseReservationQR(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode
	}

	reservation, err := srv.GetReservation(ctx, ticket.ReservationID)
	if err != nil {
		return nil, err
	}

	if ticket.PantryID != "" && ticket.PantryID != reservation.PantryID {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails("pantry mismatch")
	}
	if !reservation.IsActive() {
		return nil, domainerrors.ErrReservationCancelled.WithDetails(reservation.ID)
	}

	return reservation, nil
}

// recountPantry stores the confirmed reservation count of a pantry. A
// pantry that was deleted in the meantime is ignored.
func recountPantry(ctx context.Context, repoFactory repository.RepositoryFactory, pantryID string) error {
	count, err := repoFactory.NewReservationRepository().CountActiveByPantry(ctx, pantryID)
	if err != nil {
		return storageError(err, "count reservations")
	}

	err = repoFactory.NewPantryRepository().SetReservationCount(ctx, pantryID, count)
	if err != nil && !errors.Is(err, repository.ErrPantryNotFound) {
		return storageError(err, "update reservation count")
	}

	return nil
}

func mapReservationError(err error, id string) error {
	if errors.Is(err, repository.ErrReservationNotFound) {
		return domainerrors.ErrReservationNotFound.WithDetails(id)
	}

	return storageError(err, "reservation "+id)
}
