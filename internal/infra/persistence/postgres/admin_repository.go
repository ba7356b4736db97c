package postgres

import (
	"context"

	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// Create persists a new admin. Emails are unique.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdmin
		}

		return domainerrors.NewStorageError(err, "failed to create admin")
	}

	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// FindByID retrieves an admin by id.
func (repo *adminRepository) FindByID(ctx context.Context, adminID string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by ID")
	}

	return toAdminDomain(&adminM), nil
}

// List returns admins in id order.
func (repo *adminRepository) List(ctx context.Context) ([]*entity.Admin, error) {
	var adminModels []*model.AdminModel

	if err := repo.db.WithContext(ctx).
		Order("admin_id ASC").
		Find(&adminModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	admins := make([]*entity.Admin, 0, len(adminModels))
	for _, adminM := range adminModels {
		admins = append(admins, toAdminDomain(adminM))
	}

	return admins, nil
}

// UpdateStatus stores a new admin status.
func (repo *adminRepository) UpdateStatus(ctx context.Context, adminID string, status entity.AdminStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("admin_id = ?", adminID).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update admin status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		AdminID:   data.AdminID,
		Name:      data.Name,
		Email:     data.Email,
		Role:      data.Role,
		Status:    entity.AdminStatus(data.Status),
		CreatedAt: data.CreatedAt.UTC(),
		UpdatedAt: data.UpdatedAt.UTC(),
	}
}

func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		AdminID:   data.AdminID,
		Name:      data.Name,
		Email:     data.Email,
		Role:      data.Role,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt.UTC(),
		UpdatedAt: data.UpdatedAt.UTC(),
	}
}
