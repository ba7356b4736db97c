package impl

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"foodbank/config"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/repository"
	"foodbank/internal/export"
	"foodbank/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTopUsers     = 10
	fiscalYearStartMon  = time.April
	usageDateTimeLayout = "2006-01-02 15:04"
)

//nolint:gochecknoglobals
var usageHistoryHeader = []string{
	"予約ID", "氏名（カナ）", "氏名（漢字）", "開催日", "場所", "世帯人数", "地域", "予約日時", "ステータス",
}

type statsService struct {
	reservationRepo repository.ReservationRepository
	config          *config.Config
	now             func() time.Time
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	Config          *config.Config
}

// NewStatsService creates a new statistics service instance
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		reservationRepo: params.ReservationRepo,
		config:          params.Config,
		now:             time.Now,
	}
}

// statsScope selects reservations by event date and location.
type statsScope struct {
	from     time.Time // inclusive, zero for unbounded
	to       time.Time // exclusive, zero for unbounded
	location string
}

func (s statsScope) contains(r *entity.Reservation) bool {
	if !s.from.IsZero() && r.EventDate.Before(s.from) {
		return false
	}
	if !s.to.IsZero() && !r.EventDate.Before(s.to) {
		return false
	}

	return s.location == "" || r.Location == s.location
}

func (srv *statsService) scopeFor(filter string) (statsScope, error) {
	loc := srv.config.Location()
	now := srv.now().In(loc)

	switch {
	case filter == "" || filter == usecase.StatsFilterAll:
		return statsScope{}, nil
	case filter == usecase.StatsFilterFiscal:
		startYear := now.Year()
		if now.Month() < fiscalYearStartMon {
			startYear--
		}
		from := time.Date(startYear, fiscalYearStartMon, 1, 0, 0, 0, 0, loc)

		return statsScope{from: from, to: from.AddDate(1, 0, 0)}, nil
	case filter == usecase.StatsFilterYear:
		from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)

		return statsScope{from: from, to: from.AddDate(1, 0, 0)}, nil
	case strings.HasPrefix(filter, usecase.StatsFilterLocationPrefix):
		location := strings.TrimPrefix(filter, usecase.StatsFilterLocationPrefix)
		if location == "" {
			break
		}

		return statsScope{location: location}, nil
	}

	return statsScope{}, domainerrors.NewValidationErrorf("不明な集計フィルタです: %s", filter)
}

// DashboardStats aggregates reservations inside the filter's period
func (srv *statsService) DashboardStats(ctx context.Context, filter string) (*entity.DashboardStats, error) {
	scope, err := srv.scopeFor(filter)
	if err != nil {
		return nil, err
	}

	records, err := srv.reservationRepo.All(ctx)
	if err != nil {
		return nil, storageError(err, "load reservations")
	}

	if filter == "" {
		filter = usecase.StatsFilterAll
	}

	return buildDashboardStats(filter, records, scope, srv.config.Location()), nil
}

func buildDashboardStats(filter string, records []*entity.Reservation, scope statsScope, loc *time.Location) *entity.DashboardStats {
	stats := &entity.DashboardStats{Filter: filter, UsageHistory: []*entity.MonthlyUsage{}}

	visitsByName := make(map[string]int)
	for _, r := range records {
		if r.IsActive() {
			visitsByName[r.NameKana]++
		}
	}

	monthly := make(map[string]int)
	for _, r := range records {
		if !scope.contains(r) {
			continue
		}

		if !r.IsActive() {
			stats.CancelCount++

			continue
		}

		stats.TotalReservations++
		switch {
		case r.HouseholdSize <= 1:
			stats.RedHouseholds++
		case r.HouseholdSize <= 3:
			stats.YellowHouseholds++
		default:
			stats.GreenHouseholds++
		}

		if visitsByName[r.NameKana] == 1 {
			stats.NewUsers++
		}

		monthly[monthLabel(r.EventDate.In(loc))]++
	}

	labels := make([]string, 0, len(monthly))
	for label := range monthly {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		stats.UsageHistory = append(stats.UsageHistory, &entity.MonthlyUsage{Label: label, Count: monthly[label]})
	}

	return stats
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%04d年%02d月", t.Year(), int(t.Month()))
}

// TopUsers ranks people by confirmed visits, most visits first
func (srv *statsService) TopUsers(ctx context.Context, limit int) ([]*entity.TopUser, error) {
	if limit <= 0 {
		limit = defaultTopUsers
	}

	records, err := srv.reservationRepo.All(ctx)
	if err != nil {
		return nil, storageError(err, "load reservations")
	}

	byName := make(map[string]*entity.TopUser)
	for _, r := range records {
		if !r.IsActive() || r.NameKana == "" {
			continue
		}

		user, ok := byName[r.NameKana]
		if !ok {
			user = &entity.TopUser{NameKana: r.NameKana}
			byName[r.NameKana] = user
		}
		user.Visits++
		if r.NameKanji != "" {
			user.NameKanji = r.NameKanji
		}
	}

	users := make([]*entity.TopUser, 0, len(byName))
	for _, user := range byName {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Visits != users[j].Visits {
			return users[i].Visits > users[j].Visits
		}

		return users[i].NameKana < users[j].NameKana
	})

	if len(users) > limit {
		users = users[:limit]
	}

	return users, nil
}

// UsageHistory lists reservations by event date range and name substring
func (srv *statsService) UsageHistory(ctx context.Context, query *usecase.UsageHistoryQuery) ([]*entity.Reservation, error) {
	filter, err := srv.usageFilter(query)
	if err != nil {
		return nil, err
	}

	reservations, err := srv.reservationRepo.Find(ctx, filter)
	if err != nil {
		return nil, storageError(err, "find usage history")
	}

	return reservations, nil
}

func (srv *statsService) usageFilter(query *usecase.UsageHistoryQuery) (entity.ReservationFilter, error) {
	filter := entity.ReservationFilter{}
	if query == nil {
		return filter, nil
	}

	loc := srv.config.Location()
	filter.NameQuery = strings.TrimSpace(query.Name)

	if raw := strings.TrimSpace(query.From); raw != "" {
		from, err := parseDate(raw, loc)
		if err != nil {
			return filter, domainerrors.NewValidationErrorf("開始日の形式が正しくありません: %s", raw)
		}
		filter.From = from
	}

	if raw := strings.TrimSpace(query.To); raw != "" {
		to, err := parseDate(raw, loc)
		if err != nil {
			return filter, domainerrors.NewValidationErrorf("終了日の形式が正しくありません: %s", raw)
		}
		filter.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return filter, nil
}

// ExportUsageHistory renders UsageHistory as CSV
func (srv *statsService) ExportUsageHistory(ctx context.Context, query *usecase.UsageHistoryQuery) (string, error) {
	reservations, err := srv.UsageHistory(ctx, query)
	if err != nil {
		return "", err
	}

	loc := srv.config.Location()
	rows := make([][]string, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, []string{
			r.ID,
			r.NameKana,
			r.NameKanji,
			r.EventDate.In(loc).Format(dateLayout),
			r.Location,
			strconv.Itoa(r.HouseholdSize),
			r.NormalizedArea,
			r.CreatedAt.In(loc).Format(usageDateTimeLayout),
			string(r.Status),
		})
	}

	out, err := export.CSV(usageHistoryHeader, rows)
	if err != nil {
		return "", errors.Wrap(err, "failed to render usage history export")
	}

	return out, nil
}
