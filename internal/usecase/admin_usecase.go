package usecase

import (
	"context"

	"foodbank/internal/domain/entity"
)

// AddAdminInput is the admin account form.
type AddAdminInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminUsecase manages back-office accounts.
type AdminUsecase interface {
	ListAdmins(ctx context.Context) ([]*entity.Admin, error)
	AddAdmin(ctx context.Context, input *AddAdminInput) (*entity.Admin, error)
	GetAdmin(ctx context.Context, adminID string) (*entity.Admin, error)
	ToggleAdminStatus(ctx context.Context, adminID string) (*entity.Admin, error)
}
