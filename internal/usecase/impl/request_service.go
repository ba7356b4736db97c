package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"foodbank/config"
	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/domain/session"
	"foodbank/internal/normalize"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	requestScopePrefix = "request:"
	defaultPlatform    = "web"
)

type requestService struct {
	txManager   repository.TransactionManager
	requestRepo repository.RequestRepository
	config      *config.Config
	notifier    *recordNotifier
	audit       *auditor
	logger      *slog.Logger
	now         func() time.Time
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	RequestRepo repository.RequestRepository
	Publisher   service.EventPublisher
	Metrics     service.MetricsRecorder
	Logs        usecase.LogUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRequestService creates a new warehouse request service instance
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:   params.TxManager,
		requestRepo: params.RequestRepo,
		config:      params.Config,
		notifier:    newRecordNotifier(params.Publisher, params.Metrics, params.Logger),
		audit:       &auditor{logs: params.Logs, logger: params.Logger},
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest stores a pending request on behalf of the session user
func (srv *requestService) CreateRequest(ctx context.Context, input *usecase.CreateRequestInput) (*entity.Request, error) {
	missing := missingFields(
		"organization_name", input.OrganizationName,
		"beneficiary_count", input.BeneficiaryCount,
		"food_type", input.FoodType,
		"pickup_date", input.PickupDate,
		"usage_purpose", input.UsagePurpose,
	)
	if len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	beneficiaries, ok := normalize.ParseCount(input.BeneficiaryCount)
	if !ok {
		return nil, domainerrors.NewValidationErrorf("受益者数の形式が正しくありません: %s", input.BeneficiaryCount)
	}

	foodType := strings.TrimSpace(input.FoodType)
	if !slices.Contains(entity.FoodTypes, foodType) {
		return nil, domainerrors.NewValidationErrorf("不明な食品カテゴリです: %s", input.FoodType)
	}

	loc := srv.config.Location()
	pickupDate, err := parseDate(input.PickupDate, loc)
	if err != nil {
		return nil, domainerrors.NewValidationErrorf("受取日の形式が正しくありません: %s", input.PickupDate)
	}

	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		platform = defaultPlatform
	}

	now := srv.now()
	caller := session.FromContext(ctx)
	request := &entity.Request{
		OrganizationName: strings.TrimSpace(input.OrganizationName),
		ContactPerson:    strings.TrimSpace(input.ContactPerson),
		ContactPhone:     strings.TrimSpace(input.ContactPhone),
		ContactEmail:     strings.TrimSpace(input.ContactEmail),
		BeneficiaryCount: beneficiaries,
		FoodType:         foodType,
		QuantityNeeded:   strings.TrimSpace(input.QuantityNeeded),
		PickupDate:       pickupDate,
		PickupTime:       strings.TrimSpace(input.PickupTime),
		UsagePurpose:     strings.TrimSpace(input.UsagePurpose),
		SpecialNotes:     strings.TrimSpace(input.SpecialNotes),
		RequesterUserID:  caller.UserID,
		RequesterName:    caller.DisplayName,
		Platform:         platform,
		Status:           entity.RequestStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		prefix := entity.DatePrefix(now.In(loc))
		id, err := nextID(ctx, repoFactory.NewSequenceRepository(), requestScopePrefix+prefix, requestIDPrefix+prefix)
		if err != nil {
			return err
		}
		request.ID = id

		if err := repoFactory.NewRequestRepository().Create(ctx, request); err != nil {
			return storageError(err, "create request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Warehouse request created", slog.String("requestID", request.ID), slog.String("foodType", request.FoodType))
	srv.audit.record(ctx, entity.LogLevelInfo, "Request Created", map[string]any{
		"request_id":        request.ID,
		"organization_name": request.OrganizationName,
		"food_type":         request.FoodType,
	})
	srv.notifier.notify(ctx, service.RecordKindRequest, request.ID, operationCreated)

	return request, nil
}

// GetRequests returns the caller's own requests, or every request for admins
func (srv *requestService) GetRequests(ctx context.Context, userID string, isAdmin bool) ([]*entity.Request, error) {
	if isAdmin {
		requests, err := srv.requestRepo.List(ctx)
		if err != nil {
			return nil, storageError(err, "list requests")
		}

		return requests, nil
	}

	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.NewValidationError("user_id")
	}

	requests, err := srv.requestRepo.FindByRequester(ctx, userID)
	if err != nil {
		return nil, storageError(err, "find requests by requester")
	}

	return requests, nil
}

// GetRequestDetails retrieves a request by id
func (srv *requestService) GetRequestDetails(ctx context.Context, id string) (*entity.Request, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.NewValidationError("request_id")
	}

	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRequestError(err, id)
	}

	return request, nil
}

// UpdateRequestStatus applies one transition of the request state machine.
// Unknown statuses fail validation; disallowed moves, including staying in
// the same status, fail with a TransitionError.
func (srv *requestService) UpdateRequestStatus(ctx context.Context, id, status string) (*entity.Request, error) {
	if missing := missingFields("request_id", id, "status", status); len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	next := entity.RequestStatus(strings.TrimSpace(status))
	if !next.IsValid() {
		return nil, domainerrors.NewValidationErrorf("不明なステータスです: %s", status)
	}

	actor := session.FromContext(ctx).Actor()

	var (
		request *entity.Request
		from    entity.RequestStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()

		current, err := requestRepo.FindByID(ctx, id)
		if err != nil {
			return mapRequestError(err, id)
		}

		if !current.Status.CanTransitionTo(next) {
			return domainerrors.NewTransitionError(string(current.Status), string(next))
		}

		if err := requestRepo.UpdateStatus(ctx, id, next, actor); err != nil {
			return mapRequestError(err, id)
		}

		from = current.Status
		current.Status = next
		current.UpdatedBy = actor
		current.UpdatedAt = srv.now()
		request = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Request status updated",
		slog.String("requestID", id),
		slog.String("from", string(from)),
		slog.String("to", string(next)),
	)
	srv.audit.record(ctx, entity.LogLevelInfo, "Request Status Updated", map[string]any{
		"request_id": id,
		"from":       from,
		"to":         next,
		"updated_by": actor,
	})
	srv.notifier.notify(ctx, service.RecordKindRequest, id, operationUpdated)

	return request, nil
}

// GetWarehouseDashboard aggregates every request
func (srv *requestService) GetWarehouseDashboard(ctx context.Context) (*entity.WarehouseDashboard, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, "list requests")
	}

	return buildWarehouseDashboard(requests), nil
}

func buildWarehouseDashboard(requests []*entity.Request) *entity.WarehouseDashboard {
	dashboard := &entity.WarehouseDashboard{
		TotalRequests:  len(requests),
		StatusCounts:   make(map[entity.RequestStatus]int),
		CategoryCounts: make(map[string]int),
	}

	for _, request := range requests {
		dashboard.StatusCounts[request.Status]++
		dashboard.CategoryCounts[request.FoodType]++
		dashboard.TotalBeneficiaries += request.BeneficiaryCount

		switch request.Status {
		case entity.RequestStatusPending:
			dashboard.PendingRequests++
		case entity.RequestStatusCompleted:
			dashboard.CompletedRequests++
		}
	}

	return dashboard
}

func mapRequestError(err error, id string) error {
	if errors.Is(err, repository.ErrRequestNotFound) {
		return domainerrors.ErrRequestNotFound.WithDetails(id)
	}

	return storageError(err, "request "+id)
}
