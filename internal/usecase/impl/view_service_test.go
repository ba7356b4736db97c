package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"foodbank/internal/domain/entity"
	"foodbank/internal/domain/service"
	"foodbank/internal/infra/lock"
	"foodbank/internal/infra/metrics"
	"foodbank/internal/infra/persistence/postgres"
	mockSvc "foodbank/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReservations(t *testing.T, db *gorm.DB) {
	t.Helper()

	ctx := context.Background()
	pantry := testPantry(50)
	seedPantry(t, db, pantry)

	repo := postgres.NewReservationRepository(db)
	rows := []struct {
		id     string
		kana   string
		size   int
		status entity.ReservationStatus
	}{
		{"250412001", "ヤマダ", 3, entity.ReservationStatusConfirmed},
		{"250412002", "スズキ", 1, entity.ReservationStatusConfirmed},
		{"250412003", "ヤマダ", 2, entity.ReservationStatusConfirmed},
		{"250412004", "サトウ", 4, entity.ReservationStatusCancelled},
	}
	for i, row := range rows {
		require.NoError(t, repo.Create(ctx, &entity.Reservation{
			ID:             row.id,
			PantryID:       pantry.PantryID,
			EventDate:      pantry.EventDate,
			Location:       pantry.Location,
			NameKana:       row.kana,
			HouseholdSize:  row.size,
			NormalizedArea: "市川真間",
			Status:         row.status,
			CreatedAt:      testNow.Add(time.Duration(i) * time.Minute),
		}))
	}
}

func newTestViewService(t *testing.T, db *gorm.DB, locker service.Locker, recorder service.MetricsRecorder) *viewService {
	t.Helper()

	srv := NewViewService(ViewServiceParams{
		TxManager:       postgres.NewTransactionManager(db),
		ReservationRepo: postgres.NewReservationRepository(db),
		ViewRepo:        postgres.NewViewRepository(db),
		Locker:          locker,
		Metrics:         recorder,
		Logs:            newLogService(db, testNow),
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	}).(*viewService)
	srv.now = fixedClock(testNow)

	return srv
}

func TestViewService_RebuildAll(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedReservations(t, db)

	released := false
	locker := mockSvc.NewMockLocker(t)
	locker.EXPECT().
		Acquire(mock.Anything, "views:rebuild", 30*time.Second).
		Return(func(context.Context) error {
			released = true

			return nil
		}, nil)

	recorder := mockSvc.NewMockMetricsRecorder(t)
	recorder.EXPECT().ObserveRebuild(mock.Anything, nil).Return().Once()

	srv := newTestViewService(t, db, locker, recorder)

	result, err := srv.RebuildAll(ctx)
	require.NoError(t, err)
	assert.True(t, released)
	assert.Equal(t, 1, result.PantryRows)
	assert.Equal(t, 2, result.UserRows)
	assert.Positive(t, result.DashboardRows)

	pantries, err := srv.PantryViews(ctx)
	require.NoError(t, err)
	require.Len(t, pantries, 1)
	assert.Equal(t, 3, pantries[0].ReservationCount)
	assert.Equal(t, 2, pantries[0].UniqueUsers)

	users, err := srv.UserViews(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	visits := map[string]int{}
	for _, user := range users {
		visits[user.NameKana] = user.TotalVisits
	}
	assert.Equal(t, map[string]int{"ヤマダ": 2, "スズキ": 1}, visits)

	dashboard, err := srv.DashboardView(ctx)
	require.NoError(t, err)
	assert.Len(t, dashboard, result.DashboardRows)
}

func TestViewService_RebuildAll_ReplacesPreviousRows(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedReservations(t, db)

	srv := newTestViewService(t, db, lock.NewLocalLocker(), metrics.NewNoopRecorder())

	_, err := srv.RebuildAll(ctx)
	require.NoError(t, err)

	require.NoError(t, postgres.NewReservationRepository(db).Delete(ctx, "250412002"))

	_, err = srv.RebuildAll(ctx)
	require.NoError(t, err)

	users, err := srv.UserViews(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ヤマダ", users[0].NameKana)
}

func TestViewService_RebuildAll_LockFailure(t *testing.T) {
	db := newTestDB(t)

	lockErr := context.DeadlineExceeded
	locker := mockSvc.NewMockLocker(t)
	locker.EXPECT().
		Acquire(mock.Anything, "views:rebuild", mock.Anything).
		Return(nil, lockErr)

	recorder := mockSvc.NewMockMetricsRecorder(t)
	recorder.EXPECT().
		ObserveRebuild(mock.Anything, mock.MatchedBy(func(err error) bool { return errors.Is(err, lockErr) })).
		Return().
		Once()

	srv := newTestViewService(t, db, locker, recorder)

	_, err := srv.RebuildAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	rows, err := srv.PantryViews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestViewService_RebuildAll_LockTTLOverrun(t *testing.T) {
	tests := []struct {
		name     string
		step     time.Duration
		wantWarn bool
	}{
		{name: "within lock ttl", step: time.Second, wantWarn: false},
		{name: "outlives lock ttl", step: 20 * time.Second, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			seedReservations(t, db)

			var buf bytes.Buffer
			srv := newTestViewService(t, db, lock.NewLocalLocker(), metrics.NewNoopRecorder())
			srv.logger = slog.New(slog.NewTextHandler(&buf, nil))

			current := testNow
			srv.now = func() time.Time {
				now := current
				current = current.Add(tt.step)

				return now
			}

			result, err := srv.RebuildAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantWarn, result.Duration > 30*time.Second)

			if tt.wantWarn {
				assert.Contains(t, buf.String(), "View rebuild outlived its lock TTL")
				assert.Contains(t, buf.String(), "lockTTL=30s")
			} else {
				assert.NotContains(t, buf.String(), "outlived its lock TTL")
			}
		})
	}
}
