package response

import (
	"net/http"

	deliverycontext "foodbank/internal/delivery/context"
	domainerrors "foodbank/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "システム内部エラーが発生しました。しばらくしてから再度お試しください"

// Envelope is the body of every /exec response. Callers inspect Success;
// the HTTP status is always 200.
type Envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
	Kind    string    `json:"kind,omitempty"`
	Code    string    `json:"code,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success writes a successful envelope.
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// Failure writes a failed envelope for err with HTTP 200.
func Failure(c echo.Context, err error) error {
	return FailureWithStatus(c, http.StatusOK, err)
}

// FailureWithStatus writes a failed envelope with an explicit HTTP status,
// used outside /exec where transport errors keep their codes.
func FailureWithStatus(c echo.Context, statusCode int, err error) error {
	kind, code, message := Describe(err)

	return c.JSON(statusCode, Envelope{
		Success: false,
		Error:   message,
		Kind:    string(kind),
		Code:    code,
		Meta:    meta(c),
	})
}

// Describe extracts what the envelope exposes about err. Internal and
// storage failures never leak their underlying error text.
func Describe(err error) (kind domainerrors.Kind, code, message string) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return domainerrors.KindInternal, domainerrors.ErrInternalError.ErrorCode(), internalErrorMessage
	}

	message = appErr.Message()
	if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Kind() != domainerrors.KindValidation && appErr.Details() != "" {
		message += ": " + appErr.Details()
	}

	return appErr.Kind(), appErr.ErrorCode(), message
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
