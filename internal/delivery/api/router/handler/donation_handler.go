package handler

import (
	"encoding/base64"
	"strings"

	"foodbank/internal/delivery/api/action"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultPhotoContentType = "image/jpeg"
	defaultDonationLimit    = 100
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
}

// DonationHandler serves the food-drive actions
type DonationHandler struct {
	donationUC usecase.DonationUsecase
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
	}
}

// Actions implements action.Provider
func (h *DonationHandler) Actions() action.Registry {
	return action.Registry{
		action.CreateDonation: h.createDonation,
		action.GetDonations:   h.listDonations,
	}
}

func (h *DonationHandler) createDonation(c echo.Context, params action.Params) (any, error) {
	photo, contentType, err := decodePhoto(params.Get("photo"))
	if err != nil {
		return nil, err
	}

	return h.donationUC.CreateDonation(c.Request().Context(), &usecase.CreateDonationInput{
		Donator:          params.Get("donator"),
		OtherDonator:     params.Get("other_donator", "otherDonator"),
		Weight:           params.Get("weight"),
		Contents:         params.Get("contents"),
		Tweet:            params.Get("tweet"),
		Memo:             params.Get("memo"),
		Photo:            photo,
		PhotoContentType: contentType,
	})
}

func (h *DonationHandler) listDonations(c echo.Context, params action.Params) (any, error) {
	return h.donationUC.ListDonations(c.Request().Context(), params.Int(defaultDonationLimit, "limit"))
}

// decodePhoto accepts raw base64 or a data URL such as
// "data:image/png;base64,...".
func decodePhoto(raw string) ([]byte, string, error) {
	if raw == "" {
		return nil, "", nil
	}

	contentType := defaultPhotoContentType
	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", domainerrors.ErrInvalidInput.WithDetails("photo")
		}
		if mediaType, _, _ := strings.Cut(header, ";"); mediaType != "" {
			contentType = mediaType
		}
		raw = payload
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", domainerrors.ErrInvalidInput.WithDetails("photo")
	}

	return data, contentType, nil
}
