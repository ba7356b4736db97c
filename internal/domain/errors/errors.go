package errors

import (
	"fmt"
	"net/http"
	"strings"

	"foodbank/internal/errors"
)

// Kind classifies an AppError. It is surfaced in the response envelope.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindNotFound   Kind = "NotFoundError"
	KindStorage    Kind = "StorageError"
	KindTransition Kind = "TransitionError"
	KindAuth       Kind = "AuthError"
	KindConflict   Kind = "ConflictError"
	KindInternal   Kind = "InternalError"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error taxonomy bucket
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind { return e.kind }

func (e *BaseError) HTTPCode() int { return e.httpCode }

func (e *BaseError) ErrorCode() string { return e.errorCode }

func (e *BaseError) Message() string { return e.message }

func (e *BaseError) Details() string { return e.details }

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Is matches predefined errors by code so copies made by WithDetails
// still satisfy errors.Is against the original.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrPantryNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"PANTRY_NOT_FOUND", "パントリーが見つかりません", "")

	ErrNoActivePantry = NewBaseError(KindNotFound, http.StatusNotFound,
		"NO_ACTIVE_PANTRY", "現在予約受付中のパントリーがありません", "")

	ErrPantryAlreadyExists = NewBaseError(KindConflict, http.StatusConflict,
		"PANTRY_ALREADY_EXISTS", "同じ日付と場所のパントリーが既に存在します", "")

	ErrPantryFull = NewBaseError(KindConflict, http.StatusConflict,
		"PANTRY_FULL", "このパントリーは定員に達しました", "")

	ErrReservationNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"RESERVATION_NOT_FOUND", "予約が見つかりません", "")

	ErrReservationCancelled = NewBaseError(KindConflict, http.StatusConflict,
		"RESERVATION_CANCELLED", "この予約は既にキャンセルされています", "")

	ErrDonationNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"DONATION_NOT_FOUND", "寄付記録が見つかりません", "")

	ErrRequestNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"REQUEST_NOT_FOUND", "依頼が見つかりません", "")

	ErrAdminNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"ADMIN_NOT_FOUND", "管理者が見つかりません", "")

	ErrAdminAlreadyExists = NewBaseError(KindConflict, http.StatusConflict,
		"ADMIN_ALREADY_EXISTS", "このメールアドレスの管理者は既に登録されています", "")

	ErrUnknownAction = NewBaseError(KindValidation, http.StatusBadRequest,
		"UNKNOWN_ACTION", "不明なアクションです", "")

	ErrInvalidInput = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_INPUT", "入力内容が正しくありません", "")

	ErrInvalidQRCode = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_QR_CODE", "QRコードが正しくありません", "")

	ErrUnauthorized = NewBaseError(KindAuth, http.StatusUnauthorized,
		"UNAUTHORIZED", "管理者認証が必要です", "")

	ErrTransactionFailed = NewBaseError(KindStorage, http.StatusInternalServerError,
		"TRANSACTION_FAILED", "データベースのトランザクションに失敗しました", "")

	ErrInternalError = NewBaseError(KindInternal, http.StatusInternalServerError,
		"INTERNAL_ERROR", "システム内部エラー", "")
)

// ValidationError lists every required field that was missing or malformed.
type ValidationError struct {
	Fields []string
	reason string
}

// NewValidationError creates a ValidationError naming the offending fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewValidationErrorf creates a ValidationError with a free-form reason.
func NewValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message()
}

func (e *ValidationError) Kind() Kind { return KindValidation }

func (e *ValidationError) HTTPCode() int { return http.StatusBadRequest }

func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }

func (e *ValidationError) Message() string {
	if e.reason != "" {
		return e.reason
	}

	return "必須項目が入力されていません: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Details() string {
	return strings.Join(e.Fields, ",")
}

// TransitionError reports a status change the state machine does not allow.
type TransitionError struct {
	From string
	To   string
}

// NewTransitionError creates a TransitionError.
func NewTransitionError(from, to string) *TransitionError {
	return &TransitionError{From: from, To: to}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("status transition %s -> %s is not allowed", e.From, e.To)
}

func (e *TransitionError) Kind() Kind { return KindTransition }

func (e *TransitionError) HTTPCode() int { return http.StatusConflict }

func (e *TransitionError) ErrorCode() string { return "INVALID_TRANSITION" }

func (e *TransitionError) Message() string {
	return fmt.Sprintf("ステータスを %s から %s に変更できません", e.From, e.To)
}

func (e *TransitionError) Details() string {
	return e.From + "->" + e.To
}

// StorageError represents a database or blob execution error.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage execution failed: "+e.details).Error()
}

func (e *StorageError) Unwrap() error { return e.err }

func (e *StorageError) Kind() Kind { return KindStorage }

func (e *StorageError) HTTPCode() int { return http.StatusInternalServerError }

func (e *StorageError) ErrorCode() string { return "STORAGE_FAILED" }

func (e *StorageError) Message() string { return "データの保存または読み込みに失敗しました" }

func (e *StorageError) Details() string { return e.details }

// KindOf returns the Kind of the first AppError in err's tree, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
