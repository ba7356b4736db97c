package usecase

import (
	"context"
	"time"

	"foodbank/internal/domain/entity"
)

// RebuildResult reports one full view materialization.
type RebuildResult struct {
	PantryRows    int           `json:"pantryRows"`
	UserRows      int           `json:"userRows"`
	DashboardRows int           `json:"dashboardRows"`
	Duration      time.Duration `json:"duration"`
	LastUpdated   time.Time     `json:"lastUpdated"`
}

// ViewUsecase rebuilds and reads the aggregate views.
type ViewUsecase interface {
	// RebuildAll replaces every view from the full reservation snapshot
	RebuildAll(ctx context.Context) (*RebuildResult, error)

	// PantryViews returns the materialized per-pantry rows
	PantryViews(ctx context.Context) ([]*entity.PantryView, error)

	// UserViews returns the materialized per-user rows
	UserViews(ctx context.Context) ([]*entity.UserView, error)

	// DashboardView returns the materialized dashboard metrics
	DashboardView(ctx context.Context) ([]*entity.DashboardMetric, error)
}
