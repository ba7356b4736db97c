package handler

import (
	"encoding/base64"

	"foodbank/internal/delivery/api/action"
	"foodbank/internal/domain/entity"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
}

// ReservationHandler serves the reservation and check-in actions
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
	}
}

type reservationRef struct {
	ReservationID string `json:"reservation_id" validate:"required"`
}

type qrPayload struct {
	QRData string `json:"qr_data" validate:"required"`
}

// QRCodeResponse carries a rendered check-in code.
type QRCodeResponse struct {
	ReservationID string `json:"reservation_id"`
	ContentType   string `json:"content_type"`
	Image         string `json:"image"` // base64 encoded PNG
}

// Actions implements action.Provider
func (h *ReservationHandler) Actions() action.Registry {
	return action.Registry{
		action.CreateReservation:            h.createReservation,
		action.GetReservation:               h.getReservation,
		action.GetReservationQR:             h.getReservationQR,
		action.VerifyReservationQR:          h.verifyReservationQR,
		action.AdminGetReservations:         h.listReservations,
		action.AdminGetReservationsByPantry: h.listByPantry,
		action.AdminCancelReservation:       h.cancelReservation,
		action.AdminDeleteReservation:       h.deleteReservation,
	}
}

func (h *ReservationHandler) createReservation(c echo.Context, params action.Params) (any, error) {
	return h.reservationUC.CreateReservation(c.Request().Context(), &usecase.CreateReservationInput{
		PantryID:          params.Get("pantry_id", "pantryId"),
		NameKana:          params.Get("name_kana", "nameKana"),
		NameKanji:         params.Get("name_kanji", "nameKanji"),
		Phone:             params.Get("phone"),
		Email:             params.Get("email"),
		HouseholdAdults:   params.Get("household_adults", "householdAdults", "adults"),
		HouseholdChildren: params.Get("household_children", "householdChildren", "children"),
		HouseholdSize:     params.Get("household_total", "householdTotal", "householdSize"),
		Area:              params.Get("area", "address"),
		Notes:             params.Get("notes"),
	})
}

func (h *ReservationHandler) getReservation(c echo.Context, params action.Params) (any, error) {
	ref, err := bindReservationRef(c, params)
	if err != nil {
		return nil, err
	}

	return h.reservationUC.GetReservation(c.Request().Context(), ref.ReservationID)
}

func (h *ReservationHandler) getReservationQR(c echo.Context, params action.Params) (any, error) {
	ref, err := bindReservationRef(c, params)
	if err != nil {
		return nil, err
	}

	qr, err := h.reservationUC.GetReservationQR(c.Request().Context(), ref.ReservationID)
	if err != nil {
		return nil, err
	}

	return &QRCodeResponse{
		ReservationID: qr.ReservationID,
		ContentType:   "image/png",
		Image:         base64.StdEncoding.EncodeToString(qr.PNG),
	}, nil
}

func (h *ReservationHandler) verifyReservationQR(c echo.Context, params action.Params) (any, error) {
	payload := qrPayload{QRData: params.Get("qr_data", "qrData", "payload")}
	if err := c.Validate(&payload); err != nil {
		return nil, err
	}

	return h.reservationUC.VerifyReservationQR(c.Request().Context(), payload.QRData)
}

func (h *ReservationHandler) listReservations(c echo.Context, params action.Params) (any, error) {
	return h.reservationUC.ListReservations(c.Request().Context(), entity.ReservationFilter{
		PantryID:  params.Get("pantry_id", "pantryId"),
		Location:  params.Get("location"),
		NameQuery: params.Get("name", "userFilter"),
		Status:    entity.ReservationStatus(params.Get("status")),
	})
}

func (h *ReservationHandler) listByPantry(c echo.Context, params action.Params) (any, error) {
	ref := pantryRef{PantryID: params.Get("pantry_id", "pantryId")}
	if err := c.Validate(&ref); err != nil {
		return nil, err
	}

	return h.reservationUC.ListByPantry(c.Request().Context(), ref.PantryID)
}

func (h *ReservationHandler) cancelReservation(c echo.Context, params action.Params) (any, error) {
	ref, err := bindReservationRef(c, params)
	if err != nil {
		return nil, err
	}

	return h.reservationUC.CancelReservation(c.Request().Context(), ref.ReservationID)
}

func (h *ReservationHandler) deleteReservation(c echo.Context, params action.Params) (any, error) {
	ref, err := bindReservationRef(c, params)
	if err != nil {
		return nil, err
	}

	if err := h.reservationUC.DeleteReservation(c.Request().Context(), ref.ReservationID); err != nil {
		return nil, err
	}

	return map[string]any{"reservation_id": ref.ReservationID, "deleted": true}, nil
}

func bindReservationRef(c echo.Context, params action.Params) (*reservationRef, error) {
	ref := &reservationRef{ReservationID: params.Get("reservation_id", "reservationId", "id")}
	if err := c.Validate(ref); err != nil {
		return nil, err
	}

	return ref, nil
}
