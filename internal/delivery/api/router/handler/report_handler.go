package handler

import (
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultTopUsers = 10

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ViewUC  usecase.ViewUsecase
	StatsUC usecase.StatsUsecase
}

// ReportHandler serves the materialized views and ad-hoc statistics
type ReportHandler struct {
	viewUC  usecase.ViewUsecase
	statsUC usecase.StatsUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		viewUC:  params.ViewUC,
		statsUC: params.StatsUC,
	}
}

// Actions implements action.Provider
func (h *ReportHandler) Actions() action.Registry {
	return action.Registry{
		action.AdminGetUsers:           h.userViews,
		action.AdminGetPantryViews:     h.pantryViews,
		action.AdminGetDashboardView:   h.dashboardView,
		action.AdminGetTopUsers:        h.topUsers,
		action.AdminGetUsageHistory:    h.usageHistory,
		action.AdminExportUsageHistory: h.exportUsageHistory,
		action.GetDashboardStats:       h.dashboardStats,
		action.UpdateAllViews:          h.rebuildViews,
	}
}

func (h *ReportHandler) userViews(c echo.Context, _ action.Params) (any, error) {
	return h.viewUC.UserViews(c.Request().Context())
}

func (h *ReportHandler) pantryViews(c echo.Context, _ action.Params) (any, error) {
	return h.viewUC.PantryViews(c.Request().Context())
}

func (h *ReportHandler) dashboardView(c echo.Context, _ action.Params) (any, error) {
	return h.viewUC.DashboardView(c.Request().Context())
}

func (h *ReportHandler) rebuildViews(c echo.Context, _ action.Params) (any, error) {
	return h.viewUC.RebuildAll(c.Request().Context())
}

func (h *ReportHandler) topUsers(c echo.Context, params action.Params) (any, error) {
	return h.statsUC.TopUsers(c.Request().Context(), params.Int(defaultTopUsers, "limit"))
}

func (h *ReportHandler) usageHistory(c echo.Context, params action.Params) (any, error) {
	return h.statsUC.UsageHistory(c.Request().Context(), usageQuery(params))
}

func (h *ReportHandler) exportUsageHistory(c echo.Context, params action.Params) (any, error) {
	return h.statsUC.ExportUsageHistory(c.Request().Context(), usageQuery(params))
}

func (h *ReportHandler) dashboardStats(c echo.Context, params action.Params) (any, error) {
	filter := params.Get("filter")
	if filter == "" {
		filter = usecase.StatsFilterAll
	}

	return h.statsUC.DashboardStats(c.Request().Context(), filter)
}

func usageQuery(params action.Params) *usecase.UsageHistoryQuery {
	return &usecase.UsageHistoryQuery{
		From: params.Get("from", "startDate"),
		To:   params.Get("to", "endDate"),
		Name: params.Get("name", "userFilter"),
	}
}
