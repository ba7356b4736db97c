// Package action defines the names and handler signature of /exec actions.
package action

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// Name identifies one /exec action.
type Name string

const (
	Test Name = "test"

	GetCurrentPantry       Name = "getCurrentPantry"
	GetCurrentActivePantry Name = "getCurrentActivePantry"
	GetPantries            Name = "getPantries"

	CreateReservation   Name = "createReservation"
	GetReservation      Name = "getReservation"
	GetReservationQR    Name = "getReservationQR"
	VerifyReservationQR Name = "verifyReservationQR"

	CreateDonation Name = "createDonation"
	GetDonations   Name = "getDonations"

	CreateRequest         Name = "createRequest"
	GetRequests           Name = "getRequests"
	GetRequestDetails     Name = "getRequestDetails"
	UpdateRequestStatus   Name = "updateRequestStatus"
	GetWarehouseDashboard Name = "getWarehouseDashboard"

	AdminGetPantries  Name = "adminGetPantries"
	AdminCreatePantry Name = "adminCreatePantry"
	AdminUpdatePantry Name = "adminUpdatePantry"
	AdminDeletePantry Name = "adminDeletePantry"

	AdminGetReservations         Name = "adminGetReservations"
	AdminGetReservationsByPantry Name = "adminGetReservationsByPantry"
	AdminCancelReservation       Name = "adminCancelReservation"
	AdminDeleteReservation       Name = "adminDeleteReservation"

	AdminGetUsers         Name = "adminGetUsers"
	AdminGetPantryViews   Name = "adminGetPantryViews"
	AdminGetDashboardView Name = "adminGetDashboardView"
	AdminGetTopUsers      Name = "adminGetTopUsers"
	AdminGetUsageHistory  Name = "adminGetUsageHistory"
	GetDashboardStats     Name = "getDashboardStats"
	UpdateAllViews        Name = "updateAllViews"

	AdminImportResponses    Name = "adminImportResponses"
	AdminGetLogs            Name = "adminGetLogs"
	AdminExportLogs         Name = "adminExportLogs"
	AdminExportUsageHistory Name = "adminExportUsageHistory"

	AdminGetAdmins         Name = "adminGetAdmins"
	AdminAddAdmin          Name = "adminAddAdmin"
	AdminGetAdminDetail    Name = "adminGetAdminDetail"
	AdminToggleAdminStatus Name = "adminToggleAdminStatus"
)

// All lists every action the facade serves.
func All() []Name {
	return []Name{
		Test,
		GetCurrentPantry, GetCurrentActivePantry, GetPantries,
		CreateReservation, GetReservation, GetReservationQR, VerifyReservationQR,
		CreateDonation, GetDonations,
		CreateRequest, GetRequests, GetRequestDetails, UpdateRequestStatus, GetWarehouseDashboard,
		AdminGetPantries, AdminCreatePantry, AdminUpdatePantry, AdminDeletePantry,
		AdminGetReservations, AdminGetReservationsByPantry, AdminCancelReservation, AdminDeleteReservation,
		AdminGetUsers, AdminGetPantryViews, AdminGetDashboardView, AdminGetTopUsers, AdminGetUsageHistory,
		GetDashboardStats, UpdateAllViews,
		AdminImportResponses, AdminGetLogs, AdminExportLogs, AdminExportUsageHistory,
		AdminGetAdmins, AdminAddAdmin, AdminGetAdminDetail, AdminToggleAdminStatus,
	}
}

// RequiresAdmin reports whether n is guarded by the admin token.
func (n Name) RequiresAdmin() bool {
	switch n {
	case UpdateAllViews, UpdateRequestStatus, GetDashboardStats:
		return true
	}

	return strings.HasPrefix(string(n), "admin")
}

// HandlerFunc serves one action and returns the envelope data.
type HandlerFunc func(c echo.Context, params Params) (any, error)

// Registry maps action names to their handlers.
type Registry map[Name]HandlerFunc

// Provider is implemented by every handler group contributing actions.
type Provider interface {
	Actions() Registry
}

// NewRegistry merges the actions of every provider. A name registered
// twice is a programming error and panics.
func NewRegistry(providers ...Provider) Registry {
	registry := make(Registry)
	for _, provider := range providers {
		for name, handler := range provider.Actions() {
			if _, exists := registry[name]; exists {
				panic("action registered twice: " + string(name))
			}
			registry[name] = handler
		}
	}

	return registry
}
