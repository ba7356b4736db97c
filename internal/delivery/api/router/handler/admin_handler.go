package handler

import (
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultLogLimit = 100

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC  usecase.AdminUsecase
	LogUC    usecase.LogUsecase
	ImportUC usecase.ImportUsecase
}

// AdminHandler serves back-office accounts, the audit log and bulk import
type AdminHandler struct {
	adminUC  usecase.AdminUsecase
	logUC    usecase.LogUsecase
	importUC usecase.ImportUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:  params.AdminUC,
		logUC:    params.LogUC,
		importUC: params.ImportUC,
	}
}

type adminRef struct {
	AdminID string `json:"admin_id" validate:"required"`
}

type importBody struct {
	CSV string `json:"csv" validate:"required"`
}

// Actions implements action.Provider
func (h *AdminHandler) Actions() action.Registry {
	return action.Registry{
		action.AdminGetAdmins:         h.listAdmins,
		action.AdminAddAdmin:          h.addAdmin,
		action.AdminGetAdminDetail:    h.getAdmin,
		action.AdminToggleAdminStatus: h.toggleAdmin,
		action.AdminGetLogs:           h.latestLogs,
		action.AdminExportLogs:        h.exportLogs,
		action.AdminImportResponses:   h.importResponses,
	}
}

func (h *AdminHandler) listAdmins(c echo.Context, _ action.Params) (any, error) {
	return h.adminUC.ListAdmins(c.Request().Context())
}

func (h *AdminHandler) addAdmin(c echo.Context, params action.Params) (any, error) {
	return h.adminUC.AddAdmin(c.Request().Context(), &usecase.AddAdminInput{
		Name:  params.Get("name"),
		Email: params.Get("email"),
		Role:  params.Get("role"),
	})
}

func (h *AdminHandler) getAdmin(c echo.Context, params action.Params) (any, error) {
	ref := adminRef{AdminID: params.Get("admin_id", "adminId")}
	if err := c.Validate(&ref); err != nil {
		return nil, err
	}

	return h.adminUC.GetAdmin(c.Request().Context(), ref.AdminID)
}

func (h *AdminHandler) toggleAdmin(c echo.Context, params action.Params) (any, error) {
	ref := adminRef{AdminID: params.Get("admin_id", "adminId")}
	if err := c.Validate(&ref); err != nil {
		return nil, err
	}

	return h.adminUC.ToggleAdminStatus(c.Request().Context(), ref.AdminID)
}

func (h *AdminHandler) latestLogs(c echo.Context, params action.Params) (any, error) {
	return h.logUC.Latest(c.Request().Context(), params.Get("level", "levelFilter"), params.Int(defaultLogLimit, "limit"))
}

func (h *AdminHandler) exportLogs(c echo.Context, _ action.Params) (any, error) {
	return h.logUC.Export(c.Request().Context())
}

func (h *AdminHandler) importResponses(c echo.Context, params action.Params) (any, error) {
	body := importBody{CSV: params.Get("csv", "csvData", "data")}
	if err := c.Validate(&body); err != nil {
		return nil, err
	}

	return h.importUC.ImportResponses(c.Request().Context(), body.CSV)
}
