package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"foodbank/config"
	"foodbank/internal/domain/entity"
	"foodbank/internal/infra/persistence/postgres"
	"foodbank/internal/normalize"
	"foodbank/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//nolint:gochecknoglobals
var tokyo = mustLoadLocation("Asia/Tokyo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return loc
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Pantry: &config.PantryConfig{
			DefaultCapacity:      50,
			WindowOpenDays:       14,
			WindowCloseDays:      7,
			DefaultHouseholdSize: 1,
		},
	}
	cfg.Env.Timezone = "Asia/Tokyo"

	return cfg
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps transactions and plain reads serialized.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestNormalizer(t *testing.T) *normalize.Normalizer {
	t.Helper()

	table, err := normalize.LoadTable("")
	require.NoError(t, err)

	return normalize.New(table)
}

// newLogService returns a log service writing to db.
func newLogService(db *gorm.DB, now time.Time) usecase.LogUsecase {
	srv := NewLogService(LogServiceParams{
		LogRepo: postgres.NewLogRepository(db),
		Logger:  newDiscardLogger(),
	}).(*logService)
	srv.now = fixedClock(now)

	return srv
}

func seedPantry(t *testing.T, db *gorm.DB, pantry *entity.Pantry) {
	t.Helper()

	require.NoError(t, postgres.NewPantryRepository(db).Create(context.Background(), pantry))
}
