package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/infra/persistence/postgres"
	"foodbank/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatsService(t *testing.T) *statsService {
	t.Helper()

	db := newTestDB(t)
	repo := postgres.NewReservationRepository(db)

	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, tokyo) }
	records := []*entity.Reservation{
		{ID: "250412001", NameKana: "ヤマダ", NameKanji: "山田", EventDate: day(2025, 4, 12), Location: "市役所本庁舎", HouseholdSize: 3},
		{ID: "250315001", NameKana: "ヤマダ", EventDate: day(2025, 3, 15), Location: "市役所本庁舎", HouseholdSize: 2},
		{ID: "250510001", NameKana: "スズキ", EventDate: day(2025, 5, 10), Location: "行徳公民館", HouseholdSize: 1},
		{ID: "250412002", NameKana: "サトウ", EventDate: day(2025, 4, 12), Location: "市役所本庁舎", HouseholdSize: 5, Status: entity.ReservationStatusCancelled},
		{ID: "250510002", NameKana: "タナカ", EventDate: day(2025, 5, 10), Location: "行徳公民館", HouseholdSize: 4},
	}
	for i, r := range records {
		if r.Status == "" {
			r.Status = entity.ReservationStatusConfirmed
		}
		r.PantryID = entity.PantryID(r.EventDate, r.Location)
		r.CreatedAt = testNow.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(context.Background(), r))
	}

	srv := NewStatsService(StatsServiceParams{
		ReservationRepo: repo,
		Config:          newTestConfig(),
	}).(*statsService)
	srv.now = fixedClock(testNow)

	return srv
}

func TestStatsService_DashboardStats(t *testing.T) {
	srv := newTestStatsService(t)

	tests := []struct {
		name   string
		filter string
		want   *entity.DashboardStats
	}{
		{
			name:   "fiscal year starts in April",
			filter: "fiscal",
			want: &entity.DashboardStats{
				Filter:            "fiscal",
				TotalReservations: 3,
				RedHouseholds:     1,
				YellowHouseholds:  1,
				GreenHouseholds:   1,
				NewUsers:          2,
				CancelCount:       1,
				UsageHistory: []*entity.MonthlyUsage{
					{Label: "2025年04月", Count: 1},
					{Label: "2025年05月", Count: 2},
				},
			},
		},
		{
			name:   "all time",
			filter: "",
			want: &entity.DashboardStats{
				Filter:            "all",
				TotalReservations: 4,
				RedHouseholds:     1,
				YellowHouseholds:  2,
				GreenHouseholds:   1,
				NewUsers:          2,
				CancelCount:       1,
				UsageHistory: []*entity.MonthlyUsage{
					{Label: "2025年03月", Count: 1},
					{Label: "2025年04月", Count: 1},
					{Label: "2025年05月", Count: 2},
				},
			},
		},
		{
			name:   "single location",
			filter: "location-行徳公民館",
			want: &entity.DashboardStats{
				Filter:            "location-行徳公民館",
				TotalReservations: 2,
				RedHouseholds:     1,
				GreenHouseholds:   1,
				NewUsers:          2,
				UsageHistory: []*entity.MonthlyUsage{
					{Label: "2025年05月", Count: 2},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := srv.DashboardStats(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsService_DashboardStats_UnknownFilter(t *testing.T) {
	srv := newTestStatsService(t)

	for _, filter := range []string{"weekly", "location-"} {
		_, err := srv.DashboardStats(context.Background(), filter)
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err), filter)
	}
}

func TestStatsService_ScopeFor_FiscalBeforeApril(t *testing.T) {
	srv := newTestStatsService(t)
	srv.now = fixedClock(time.Date(2026, 2, 10, 12, 0, 0, 0, tokyo))

	scope, err := srv.scopeFor("fiscal")
	require.NoError(t, err)
	assert.True(t, scope.from.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, tokyo)))
	assert.True(t, scope.to.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, tokyo)))
}

func TestStatsService_TopUsers(t *testing.T) {
	srv := newTestStatsService(t)

	users, err := srv.TopUsers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, &entity.TopUser{NameKana: "ヤマダ", NameKanji: "山田", Visits: 2}, users[0])
	assert.Equal(t, "スズキ", users[1].NameKana)

	all, err := srv.TopUsers(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStatsService_UsageHistory(t *testing.T) {
	srv := newTestStatsService(t)
	ctx := context.Background()

	april := &usecase.UsageHistoryQuery{From: "2025-04-01", To: "2025-04-30"}
	rows, err := srv.UsageHistory(ctx, april)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = srv.UsageHistory(ctx, &usecase.UsageHistoryQuery{From: "2025-04-01", To: "2025-04-30", Name: "ヤマ"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "250412001", rows[0].ID)

	_, err = srv.UsageHistory(ctx, &usecase.UsageHistoryQuery{From: "April"})
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	out, err := srv.ExportUsageHistory(ctx, april)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "予約ID,氏名（カナ）,氏名（漢字）,開催日,場所,世帯人数,地域,予約日時,ステータス", lines[0])
	assert.Contains(t, out, "250412001,ヤマダ,山田,2025-04-12,市役所本庁舎,3,,2025-04-01 10:00,confirmed")
}
