package impl

import (
	"context"
	"testing"

	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/infra/persistence/postgres"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(t *testing.T) *adminService {
	t.Helper()

	db := newTestDB(t)
	srv := NewAdminService(AdminServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		AdminRepo: postgres.NewAdminRepository(db),
		Logs:      newLogService(db, testNow),
		Logger:    newDiscardLogger(),
	}).(*adminService)
	srv.now = fixedClock(testNow)

	return srv
}

func TestAdminService_AddAdmin(t *testing.T) {
	ctx := context.Background()
	srv := newTestAdminService(t)

	first, err := srv.AddAdmin(ctx, &usecase.AddAdminInput{Name: "佐藤", Email: "sato@example.org"})
	require.NoError(t, err)
	second, err := srv.AddAdmin(ctx, &usecase.AddAdminInput{Name: "鈴木", Email: "suzuki@example.org", Role: "editor"})
	require.NoError(t, err)

	assert.Equal(t, "admin001", first.AdminID)
	assert.Equal(t, entity.DefaultAdminRole, first.Role)
	assert.Equal(t, entity.AdminStatusActive, first.Status)
	assert.Equal(t, "admin002", second.AdminID)
	assert.Equal(t, "editor", second.Role)

	_, err = srv.AddAdmin(ctx, &usecase.AddAdminInput{Name: "佐藤 2", Email: "sato@example.org"})
	assert.True(t, errors.Is(err, domainerrors.ErrAdminAlreadyExists))

	third, err := srv.AddAdmin(ctx, &usecase.AddAdminInput{Name: "田中", Email: "tanaka@example.org"})
	require.NoError(t, err)
	assert.Equal(t, "admin003", third.AdminID)

	admins, err := srv.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 3)
}

func TestAdminService_AddAdmin_Validation(t *testing.T) {
	srv := newTestAdminService(t)
	ctx := context.Background()

	_, err := srv.AddAdmin(ctx, &usecase.AddAdminInput{})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"name", "email"}, validationErr.Fields)

	_, err = srv.AddAdmin(ctx, &usecase.AddAdminInput{Name: "佐藤", Email: "not-an-email"})
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestAdminService_ToggleAdminStatus(t *testing.T) {
	ctx := context.Background()
	srv := newTestAdminService(t)

	admin, err := srv.AddAdmin(ctx, &usecase.AddAdminInput{Name: "佐藤", Email: "sato@example.org"})
	require.NoError(t, err)

	toggled, err := srv.ToggleAdminStatus(ctx, admin.AdminID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdminStatusInactive, toggled.Status)

	toggled, err = srv.ToggleAdminStatus(ctx, admin.AdminID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdminStatusActive, toggled.Status)

	stored, err := srv.GetAdmin(ctx, admin.AdminID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdminStatusActive, stored.Status)

	_, err = srv.ToggleAdminStatus(ctx, "admin999")
	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}
