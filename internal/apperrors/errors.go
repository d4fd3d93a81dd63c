package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource changed since it was read or is in a state that forbids the action.
var ErrConflict = errors.New("resource conflict")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the request carries no valid identity.
var ErrUnauthorized = errors.New("unauthorized")

// Machine readable codes shown to the UI next to the message.
const (
	CodeConversionRequirements = "PROSPECT_CONVERSION_REQUIREMENTS"
	CodeAuthRequired           = "AUTH_REQUIRED"
	CodeLinkForbidden          = "LINK_FORBIDDEN"
	CodeExportForbidden        = "EXPORT_FORBIDDEN"
	CodeImportForbidden        = "IMPORT_FORBIDDEN"
	CodeVersionConflict        = "VERSION_CONFLICT"
)

// AppError carries an HTTP status, an optional code and the underlying error kind.
type AppError struct {
	Status  int
	Code    string
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another coded AppError by code, so callers can test against the
// exported coded values regardless of the message attached.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// NewAppError wraps err with a status and message.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// Coded sentinels. Compare with errors.Is.
var (
	ErrConversionRequirements = &AppError{Status: http.StatusUnprocessableEntity, Code: CodeConversionRequirements, Err: ErrValidation}
	ErrAuthRequired           = &AppError{Status: http.StatusUnauthorized, Code: CodeAuthRequired, Err: ErrUnauthorized}
	ErrLinkForbidden          = &AppError{Status: http.StatusForbidden, Code: CodeLinkForbidden, Err: ErrForbidden}
	ErrExportForbidden        = &AppError{Status: http.StatusForbidden, Code: CodeExportForbidden, Err: ErrForbidden}
	ErrImportForbidden        = &AppError{Status: http.StatusForbidden, Code: CodeImportForbidden, Err: ErrForbidden}
	ErrVersionConflict        = &AppError{Status: http.StatusConflict, Code: CodeVersionConflict, Err: ErrConflict}
)

// WithMessage returns a copy of a coded error carrying a specific message.
func WithMessage(coded *AppError, message string) *AppError {
	return &AppError{Status: coded.Status, Code: coded.Code, Message: message, Err: coded.Err}
}

// WithDetails is WithMessage plus the list of unmet conditions shown to the user.
func WithDetails(coded *AppError, message string, details []string) *AppError {
	appErr := WithMessage(coded, message)
	appErr.Details = details
	return appErr
}

// CodeOf returns the code of the first AppError in the chain, if any.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
