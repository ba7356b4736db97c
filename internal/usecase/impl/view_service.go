package impl

import (
	"context"
	"log/slog"
	"time"

	"foodbank/config"
	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	"foodbank/internal/domain/repository"
	"foodbank/internal/domain/service"
	"foodbank/internal/usecase"
	"foodbank/internal/view"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	viewRebuildLockKey   = "views:rebuild"
	defaultViewLockTTL   = 30 * time.Second
	viewLockReleaseLimit = 5 * time.Second
)

type viewService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	viewRepo        repository.ViewRepository
	locker          service.Locker
	metrics         service.MetricsRecorder
	audit           *auditor
	lockTTL         time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

// ViewServiceParams holds dependencies for ViewService, injected by Fx.
type ViewServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	ViewRepo        repository.ViewRepository
	Locker          service.Locker
	Metrics         service.MetricsRecorder
	Logs            usecase.LogUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewViewService creates a new view materialization service instance
func NewViewService(params ViewServiceParams) usecase.ViewUsecase {
	lockTTL := defaultViewLockTTL
	if params.Config != nil && params.Config.Redis != nil && params.Config.Redis.LockTTL > 0 {
		lockTTL = params.Config.Redis.LockTTL
	}

	return &viewService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		viewRepo:        params.ViewRepo,
		locker:          params.Locker,
		metrics:         params.Metrics,
		audit:           &auditor{logs: params.Logs, logger: params.Logger},
		lockTTL:         lockTTL,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *viewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RebuildAll materializes every view from the full reservation snapshot
// while holding the rebuild lock, then swaps the three tables in one
// transaction.
func (srv *viewService) RebuildAll(ctx context.Context) (result *usecase.RebuildResult, err error) {
	started := srv.now()
	defer func() {
		if srv.metrics != nil {
			srv.metrics.ObserveRebuild(srv.now().Sub(started), err)
		}
	}()

	release, err := srv.locker.Acquire(ctx, viewRebuildLockKey, srv.lockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire view rebuild lock")
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), viewLockReleaseLimit)
		defer cancel()

		if releaseErr := release(releaseCtx); releaseErr != nil {
			srv.log(ctx).Warn("Failed to release view rebuild lock", slog.Any("error", releaseErr))
		}
	}()

	records, err := srv.reservationRepo.All(ctx)
	if err != nil {
		return nil, storageError(err, "load reservation snapshot")
	}

	now := srv.now()
	views := view.RebuildAll(records, now)

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewViewRepository().Replace(ctx, views)
	}); err != nil {
		return nil, storageError(err, "replace views")
	}

	result = &usecase.RebuildResult{
		PantryRows:    len(views.Pantries),
		UserRows:      len(views.Users),
		DashboardRows: len(views.Dashboard),
		Duration:      srv.now().Sub(started),
		LastUpdated:   now,
	}

	// The lock is not extended; another rebuild may have run concurrently.
	if result.Duration > srv.lockTTL {
		srv.log(ctx).Warn("View rebuild outlived its lock TTL",
			slog.Duration("duration", result.Duration),
			slog.Duration("lockTTL", srv.lockTTL),
		)
	}

	srv.log(ctx).Info("Views rebuilt",
		slog.Int("records", len(records)),
		slog.Int("pantryRows", result.PantryRows),
		slog.Int("userRows", result.UserRows),
		slog.Duration("duration", result.Duration),
	)
	srv.audit.record(ctx, entity.LogLevelInfo, "All Views Updated", result)

	return result, nil
}

// PantryViews returns the materialized per-pantry rows
func (srv *viewService) PantryViews(ctx context.Context) ([]*entity.PantryView, error) {
	rows, err := srv.viewRepo.PantryViews(ctx)
	if err != nil {
		return nil, storageError(err, "read pantry views")
	}

	return rows, nil
}

// UserViews returns the materialized per-user rows
func (srv *viewService) UserViews(ctx context.Context) ([]*entity.UserView, error) {
	rows, err := srv.viewRepo.UserViews(ctx)
	if err != nil {
		return nil, storageError(err, "read user views")
	}

	return rows, nil
}

// DashboardView returns the materialized dashboard metrics
func (srv *viewService) DashboardView(ctx context.Context) ([]*entity.DashboardMetric, error) {
	rows, err := srv.viewRepo.DashboardMetrics(ctx)
	if err != nil {
		return nil, storageError(err, "read dashboard view")
	}

	return rows, nil
}
