package handler

import (
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/domain/session"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
}

// RequestHandler serves the warehouse request actions
type RequestHandler struct {
	requestUC usecase.RequestUsecase
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
	}
}

type requestRef struct {
	RequestID string `json:"request_id" validate:"required"`
}

type statusChange struct {
	RequestID string `json:"request_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// Actions implements action.Provider
func (h *RequestHandler) Actions() action.Registry {
	return action.Registry{
		action.CreateRequest:         h.createRequest,
		action.GetRequests:           h.listRequests,
		action.GetRequestDetails:     h.getRequestDetails,
		action.UpdateRequestStatus:   h.updateRequestStatus,
		action.GetWarehouseDashboard: h.getWarehouseDashboard,
	}
}

func (h *RequestHandler) createRequest(c echo.Context, params action.Params) (any, error) {
	return h.requestUC.CreateRequest(c.Request().Context(), &usecase.CreateRequestInput{
		OrganizationName: params.Get("organization_name", "organizationName"),
		ContactPerson:    params.Get("contact_person", "contactPerson"),
		ContactPhone:     params.Get("contact_phone", "contactPhone"),
		ContactEmail:     params.Get("contact_email", "contactEmail"),
		BeneficiaryCount: params.Get("beneficiary_count", "beneficiaryCount"),
		FoodType:         params.Get("food_type", "foodType"),
		QuantityNeeded:   params.Get("quantity_needed", "quantityNeeded"),
		PickupDate:       params.Get("pickup_date", "pickupDate"),
		PickupTime:       params.Get("pickup_time", "pickupTime"),
		UsagePurpose:     params.Get("usage_purpose", "usagePurpose"),
		SpecialNotes:     params.Get("special_notes", "specialNotes"),
		Platform:         params.Get("platform"),
	})
}

// listRequests trusts only the verified session for admin scope, never
// an isAdmin parameter.
func (h *RequestHandler) listRequests(c echo.Context, _ action.Params) (any, error) {
	ctx := c.Request().Context()
	sess := session.FromContext(ctx)

	return h.requestUC.GetRequests(ctx, sess.UserID, sess.IsAdmin)
}

func (h *RequestHandler) getRequestDetails(c echo.Context, params action.Params) (any, error) {
	ref := requestRef{RequestID: params.Get("request_id", "requestId", "id")}
	if err := c.Validate(&ref); err != nil {
		return nil, err
	}

	return h.requestUC.GetRequestDetails(c.Request().Context(), ref.RequestID)
}

func (h *RequestHandler) updateRequestStatus(c echo.Context, params action.Params) (any, error) {
	change := statusChange{
		RequestID: params.Get("request_id", "requestId", "id"),
		Status:    params.Get("status", "newStatus"),
	}
	if err := c.Validate(&change); err != nil {
		return nil, err
	}

	return h.requestUC.UpdateRequestStatus(c.Request().Context(), change.RequestID, change.Status)
}

func (h *RequestHandler) getWarehouseDashboard(c echo.Context, _ action.Params) (any, error) {
	return h.requestUC.GetWarehouseDashboard(c.Request().Context())
}
