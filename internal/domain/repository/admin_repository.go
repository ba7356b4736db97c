package repository

import (
	"context"

	"foodbank/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for admin persistence.
var (
	ErrAdminNotFound  = errors.New("admin not found")
	ErrDuplicateAdmin = errors.New("admin already exists")
)

// AdminRepository defines back-office account persistence.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, adminID string) (*entity.Admin, error)
	List(ctx context.Context) ([]*entity.Admin, error)
	UpdateStatus(ctx context.Context, adminID string, status entity.AdminStatus) error
}
