package repository

import (
	"context"

	"foodbank/internal/domain/entity"
)

// ViewRepository stores materialized views. Replace overwrites all three
// tables and must run in a transaction.
type ViewRepository interface {
	Replace(ctx context.Context, views *entity.Views) error
	PantryViews(ctx context.Context) ([]*entity.PantryView, error)
	UserViews(ctx context.Context) ([]*entity.UserView, error)
	DashboardMetrics(ctx context.Context) ([]*entity.DashboardMetric, error)
}
