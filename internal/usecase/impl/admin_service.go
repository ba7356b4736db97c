package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	txManager repository.TransactionManager
	adminRepo repository.AdminRepository
	validate  *validator.Validate
	audit     *auditor
	logger    *slog.Logger
	now       func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdminRepo repository.AdminRepository
	Logs      usecase.LogUsecase
	Logger    *slog.Logger
}

// NewAdminService creates a new admin account service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		adminRepo: params.AdminRepo,
		validate:  validator.New(),
		audit:     &auditor{logs: params.Logs, logger: params.Logger},
		logger:    params.Logger,
		now:       time.Now,
	}
}

// ListAdmins returns every admin account
func (srv *adminService) ListAdmins(ctx context.Context) ([]*entity.Admin, error) {
	admins, err := srv.adminRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, "list admins")
	}

	return admins, nil
}

// AddAdmin creates an active admin with an adminNNN id
func (srv *adminService) AddAdmin(ctx context.Context, input *usecase.AddAdminInput) (*entity.Admin, error) {
	if missing := missingFields("name", input.Name, "email", input.Email); len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	email := strings.TrimSpace(input.Email)
	if err := srv.validate.Var(email, "email"); err != nil {
		return nil, domainerrors.NewValidationErrorf("メールアドレスの形式が正しくありません: %s", email)
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = entity.DefaultAdminRole
	}

	now := srv.now()
	admin := &entity.Admin{
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Role:      role,
		Status:    entity.AdminStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		id, err := nextID(ctx, repoFactory.NewSequenceRepository(), adminScope, adminIDPrefix)
		if err != nil {
			return err
		}
		admin.AdminID = id

		if err := repoFactory.NewAdminRepository().Create(ctx, admin); err != nil {
			if errors.Is(err, repository.ErrDuplicateAdmin) {
				return domainerrors.ErrAdminAlreadyExists.WithDetails(email)
			}

			return storageError(err, "create admin")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Admin added", slog.String("adminID", admin.AdminID))
	srv.audit.record(ctx, entity.LogLevelInfo, "Admin Added", map[string]any{
		"admin_id": admin.AdminID,
		"email":    admin.Email,
		"role":     admin.Role,
	})

	return admin, nil
}

// GetAdmin retrieves an admin by id
func (srv *adminService) GetAdmin(ctx context.Context, adminID string) (*entity.Admin, error) {
	if strings.TrimSpace(adminID) == "" {
		return nil, domainerrors.NewValidationError("admin_id")
	}

	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, mapAdminError(err, adminID)
	}

	return admin, nil
}

// ToggleAdminStatus flips an admin between active and inactive
func (srv *adminService) ToggleAdminStatus(ctx context.Context, adminID string) (*entity.Admin, error) {
	if strings.TrimSpace(adminID) == "" {
		return nil, domainerrors.NewValidationError("admin_id")
	}

	var toggled *entity.Admin
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.NewAdminRepository()

		admin, err := adminRepo.FindByID(ctx, adminID)
		if err != nil {
			return mapAdminError(err, adminID)
		}

		admin.Status = admin.Status.Toggled()
		if err := adminRepo.UpdateStatus(ctx, adminID, admin.Status); err != nil {
			return mapAdminError(err, adminID)
		}
		admin.UpdatedAt = srv.now()
		toggled = admin

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.record(ctx, entity.LogLevelInfo, "Admin Status Toggled", map[string]any{
		"admin_id": adminID,
		"status":   toggled.Status,
	})

	return toggled, nil
}

func mapAdminError(err error, adminID string) error {
	if errors.Is(err, repository.ErrAdminNotFound) {
		return domainerrors.ErrAdminNotFound.WithDetails(adminID)
	}

	return storageError(err, "admin "+adminID)
}
