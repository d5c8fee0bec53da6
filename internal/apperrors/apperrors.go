package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType separates failures the router can recover from (parse) from
// failures it must surface to the caller (storage).
type ErrorType string

const (
	TypeParse   ErrorType = "parse"
	TypeStorage ErrorType = "storage"
)

// Error codes for the failure taxonomy.
const (
	CodeNotANumber        = "NOT_A_NUMBER"
	CodeInvalidDateTime   = "INVALID_DATETIME"
	CodeEmptyPayload      = "EMPTY_PAYLOAD"
	CodeUnknownMedication = "UNKNOWN_MEDICATION"
	CodeStorageFailure    = "STORAGE_FAILURE"
)

// AppError is an application error with a type, a stable code and, for
// parse-kind failures, the corrective text shown to the user.
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	Internal error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped internal error.
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is matches AppErrors by type and code.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

// New creates a new AppError.
func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error into an AppError.
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
	}
}

// NewStorageError wraps a failed store operation.
func NewStorageError(err error) *AppError {
	return Wrap(err, TypeStorage, CodeStorageFailure, "storage operation failed")
}

// UserMessage returns the corrective text for parse-kind failures. Storage
// failures have no user-facing text and are reported to the caller instead.
func UserMessage(err error) (string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type == TypeParse {
		return appErr.Message, true
	}
	return "", false
}

// Code returns the error code of an AppError, or "" for other errors.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
