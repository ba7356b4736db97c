package usecase

import (
	"context"

	"foodbank/internal/domain/entity"
)

// Dashboard statistics filters. Location filters are "location-<name>".
const (
	StatsFilterAll            = "all"
	StatsFilterFiscal         = "fiscal"
	StatsFilterYear           = "year"
	StatsFilterLocationPrefix = "location-"
)

// UsageHistoryQuery narrows the usage history by event date (YYYY-MM-DD)
// and a substring of either name.
type UsageHistoryQuery struct {
	From string `json:"from"`
	To   string `json:"to"`
	Name string `json:"name"`
}

// StatsUsecase computes ad-hoc statistics over the reservation store.
type StatsUsecase interface {
	// DashboardStats aggregates reservations under a filter
	DashboardStats(ctx context.Context, filter string) (*entity.DashboardStats, error)

	// TopUsers ranks people by confirmed visits
	TopUsers(ctx context.Context, limit int) ([]*entity.TopUser, error)

	// UsageHistory lists reservations matching query, newest first
	UsageHistory(ctx context.Context, query *UsageHistoryQuery) ([]*entity.Reservation, error)

	// ExportUsageHistory renders UsageHistory as CSV text
	ExportUsageHistory(ctx context.Context, query *UsageHistoryQuery) (string, error)
}
