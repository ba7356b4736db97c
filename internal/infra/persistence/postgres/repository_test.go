package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodbank/internal/domain/entity"
	"foodbank/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func samplePantry(now time.Time) *entity.Pantry {
	eventDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	return &entity.Pantry{
		PantryID:         entity.PantryID(eventDate, "市役所本庁舎"),
		EventDate:        eventDate,
		Location:         "市役所本庁舎",
		CapacityTotal:    50,
		Status:           entity.PantryStatusActive,
		ReservationStart: now.Add(-24 * time.Hour),
		ReservationEnd:   now.Add(24 * time.Hour),
	}
}

func TestSequenceRepository_Next(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	var got []int64
	for range 3 {
		err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			value, err := f.NewSequenceRepository().Next(ctx, "reservation:250412")
			got = append(got, value)

			return err
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{1, 2, 3}, got)

	current, err := NewSequenceRepository(db).Current(ctx, "reservation:250412")
	require.NoError(t, err)
	assert.EqualValues(t, 3, current)

	other, err := NewSequenceRepository(db).Current(ctx, "donation:250412")
	require.NoError(t, err)
	assert.Zero(t, other)
}

func TestSequenceRepository_RollbackKeepsCounter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	errBoom := fmt.Errorf("boom")
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewSequenceRepository().Next(ctx, "admin"); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	current, err := NewSequenceRepository(db).Current(ctx, "admin")
	require.NoError(t, err)
	assert.Zero(t, current)
}

func TestPantryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	repo := NewPantryRepository(newTestDB(t))

	pantry := samplePantry(now)
	require.NoError(t, repo.Create(ctx, pantry))
	assert.Equal(t, "25.04.12.市役所本庁", pantry.PantryID)

	err := repo.Create(ctx, samplePantry(now))
	require.ErrorIs(t, err, repository.ErrDuplicatePantry)

	found, err := repo.FindReservable(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, pantry.PantryID, found.PantryID)

	_, err = repo.FindReservable(ctx, now.Add(48*time.Hour))
	require.ErrorIs(t, err, repository.ErrPantryNotFound)

	pantry.Title = "4月のフードパントリー"
	pantry.Status = entity.PantryStatusClosed
	require.NoError(t, repo.Update(ctx, pantry))

	_, err = repo.FindReservable(ctx, now)
	require.ErrorIs(t, err, repository.ErrPantryNotFound)

	require.NoError(t, repo.SetReservationCount(ctx, pantry.PantryID, 7))
	found, err = repo.FindByID(ctx, pantry.PantryID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.ReservationCount)
	assert.Equal(t, "4月のフードパントリー", found.Title)

	require.NoError(t, repo.Delete(ctx, pantry.PantryID))
	_, err = repo.FindByID(ctx, pantry.PantryID)
	require.ErrorIs(t, err, repository.ErrPantryNotFound)
	require.ErrorIs(t, repo.Delete(ctx, pantry.PantryID), repository.ErrPantryNotFound)
}

func TestPantryRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	repo := NewPantryRepository(newTestDB(t))

	older := samplePantry(now)
	newer := samplePantry(now)
	newer.EventDate = older.EventDate.AddDate(0, 1, 0)
	newer.PantryID = entity.PantryID(newer.EventDate, newer.Location)

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	pantries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, pantries, 2)
	assert.Equal(t, newer.PantryID, pantries[0].PantryID)
}

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(newTestDB(t))
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"ヤマダ タロウ", "スズキ ハナコ", "ヤマダ ジロウ"} {
		require.NoError(t, repo.Create(ctx, &entity.Reservation{
			ID:            fmt.Sprintf("25041200%d", i+1),
			PantryID:      "25.04.12.市役所本庁",
			EventDate:     time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
			Location:      "市役所本庁舎",
			NameKana:      name,
			HouseholdSize: i + 1,
			Status:        entity.ReservationStatusConfirmed,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "250412001", all[0].ID)

	matches, err := repo.Find(ctx, entity.ReservationFilter{NameQuery: "ヤマダ"})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "250412003", matches[0].ID)

	require.NoError(t, repo.UpdateStatus(ctx, "250412002", entity.ReservationStatusCancelled))
	count, err := repo.CountActiveByPantry(ctx, "25.04.12.市役所本庁")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	cancelled, err := repo.Find(ctx, entity.ReservationFilter{Status: entity.ReservationStatusCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)

	require.NoError(t, repo.Delete(ctx, "250412001"))
	_, err = repo.FindByID(ctx, "250412001")
	require.ErrorIs(t, err, repository.ErrReservationNotFound)
	require.ErrorIs(t, repo.UpdateStatus(ctx, "250412001", entity.ReservationStatusCancelled), repository.ErrReservationNotFound)

	byPantry, err := repo.FindByPantry(ctx, "25.04.12.市役所本庁")
	require.NoError(t, err)
	assert.Len(t, byPantry, 2)
}

func TestRequestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(newTestDB(t))

	request := &entity.Request{
		ID:               "R250401001",
		OrganizationName: "子ども食堂みらい",
		ContactPerson:    "佐藤",
		BeneficiaryCount: 30,
		FoodType:         entity.FoodTypes[0],
		PickupDate:       time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		UsagePurpose:     "食事提供",
		RequesterUserID:  "U123",
		Status:           entity.RequestStatusPending,
	}
	require.NoError(t, repo.Create(ctx, request))

	require.NoError(t, repo.UpdateStatus(ctx, request.ID, entity.RequestStatusApproved, "admin001"))

	found, err := repo.FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, found.Status)
	assert.Equal(t, "admin001", found.UpdatedBy)

	mine, err := repo.FindByRequester(ctx, "U123")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.ErrorIs(t, repo.UpdateStatus(ctx, "R000000000", entity.RequestStatusApproved, ""), repository.ErrRequestNotFound)
}

func TestAdminRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(newTestDB(t))

	admin := &entity.Admin{AdminID: "admin001", Name: "管理者", Email: "a@example.org",
		Role: entity.DefaultAdminRole, Status: entity.AdminStatusActive}
	require.NoError(t, repo.Create(ctx, admin))

	dup := *admin
	dup.AdminID = "admin002"
	require.ErrorIs(t, repo.Create(ctx, &dup), repository.ErrDuplicateAdmin)

	require.NoError(t, repo.UpdateStatus(ctx, "admin001", entity.AdminStatusInactive))
	found, err := repo.FindByID(ctx, "admin001")
	require.NoError(t, err)
	assert.Equal(t, entity.AdminStatusInactive, found.Status)
}

func TestLogRepository_Latest(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(newTestDB(t))
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	levels := []entity.LogLevel{entity.LogLevelInfo, entity.LogLevelError, entity.LogLevelInfo}
	for i, level := range levels {
		require.NoError(t, repo.Append(ctx, &entity.LogEntry{
			ID:        fmt.Sprintf("log%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Level:     level,
			Message:   fmt.Sprintf("entry %d", i),
		}))
	}

	latest, err := repo.Latest(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "entry 2", latest[0].Message)

	errorsOnly, err := repo.Latest(ctx, entity.LogLevelError, 100)
	require.NoError(t, err)
	require.Len(t, errorsOnly, 1)
	assert.Equal(t, "entry 1", errorsOnly[0].Message)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestViewRepository_Replace(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	now := time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC)

	first := &entity.Views{
		Pantries: []*entity.PantryView{
			{PantryID: "25.04.19.ニコット", EventDate: now, Location: "ニコット", ReservationCount: 1, LastUpdated: now},
			{PantryID: "25.04.12.市役所本庁", EventDate: now, Location: "市役所本庁舎", ReservationCount: 3, LastUpdated: now},
		},
		Dashboard: []*entity.DashboardMetric{
			{Metric: "total_reservations", Value: 4, Category: entity.MetricCategoryBasic, LastUpdated: now},
		},
	}

	replace := func(views *entity.Views) {
		err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			return f.NewViewRepository().Replace(ctx, views)
		})
		require.NoError(t, err)
	}

	replace(first)
	replace(first)

	repo := NewViewRepository(db)
	pantries, err := repo.PantryViews(ctx)
	require.NoError(t, err)
	require.Len(t, pantries, 2)
	assert.Equal(t, "25.04.19.ニコット", pantries[0].PantryID)

	users, err := repo.UserViews(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	replace(&entity.Views{})
	metrics, err := repo.DashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Empty(t, metrics)
}
