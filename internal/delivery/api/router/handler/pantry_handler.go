package handler

import (
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PantryHandlerParams holds dependencies for PantryHandler, injected by Fx.
type PantryHandlerParams struct {
	fx.In

	PantryUC usecase.PantryUsecase
}

// PantryHandler serves the pantry actions
type PantryHandler struct {
	pantryUC usecase.PantryUsecase
}

// NewPantryHandler is the constructor for PantryHandler
func NewPantryHandler(params PantryHandlerParams) *PantryHandler {
	return &PantryHandler{
		pantryUC: params.PantryUC,
	}
}

type pantryRef struct {
	PantryID string `json:"pantry_id" validate:"required"`
}

// Actions implements action.Provider
func (h *PantryHandler) Actions() action.Registry {
	return action.Registry{
		action.GetCurrentPantry:       h.getCurrentPantry,
		action.GetCurrentActivePantry: h.getCurrentPantry,
		action.GetPantries:            h.listPantries,
		action.AdminGetPantries:       h.listPantries,
		action.AdminCreatePantry:      h.createPantry,
		action.AdminUpdatePantry:      h.updatePantry,
		action.AdminDeletePantry:      h.deletePantry,
	}
}

func (h *PantryHandler) getCurrentPantry(c echo.Context, _ action.Params) (any, error) {
	return h.pantryUC.GetCurrentPantry(c.Request().Context())
}

func (h *PantryHandler) listPantries(c echo.Context, _ action.Params) (any, error) {
	return h.pantryUC.ListPantries(c.Request().Context())
}

func (h *PantryHandler) createPantry(c echo.Context, params action.Params) (any, error) {
	return h.pantryUC.CreatePantry(c.Request().Context(), pantryInput(params))
}

func (h *PantryHandler) updatePantry(c echo.Context, params action.Params) (any, error) {
	input := pantryInput(params)
	if err := c.Validate(&pantryRef{PantryID: input.PantryID}); err != nil {
		return nil, err
	}

	return h.pantryUC.UpdatePantry(c.Request().Context(), input)
}

func (h *PantryHandler) deletePantry(c echo.Context, params action.Params) (any, error) {
	ref := pantryRef{PantryID: params.Get("pantry_id", "pantryId")}
	if err := c.Validate(&ref); err != nil {
		return nil, err
	}

	if err := h.pantryUC.DeletePantry(c.Request().Context(), ref.PantryID); err != nil {
		return nil, err
	}

	return map[string]any{"pantry_id": ref.PantryID, "deleted": true}, nil
}

func pantryInput(params action.Params) *usecase.PantryInput {
	return &usecase.PantryInput{
		PantryID:         params.Get("pantry_id", "pantryId"),
		EventDate:        params.Get("event_date", "eventDate"),
		Location:         params.Get("location"),
		CapacityTotal:    params.Get("capacity_total", "capacityTotal", "capacity"),
		Status:           params.Get("status"),
		Title:            params.Get("title"),
		HeaderMessage:    params.Get("header_message", "headerMessage"),
		EmailMessage:     params.Get("email_message", "emailMessage"),
		ReservationStart: params.Get("reservation_start", "reservationStart"),
		ReservationEnd:   params.Get("reservation_end", "reservationEnd"),
		LocationAddress:  params.Get("location_address", "locationAddress"),
		LocationAccess:   params.Get("location_access", "locationAccess"),
	}
}
