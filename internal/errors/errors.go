package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a class of failure in a sync run.
type ErrorCode string

const (
	// Configuration errors abort the process before any network activity.
	ErrCodeConfigMissing ErrorCode = "CONFIG_MISSING"
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Input errors
	ErrCodeChangeSource ErrorCode = "CHANGE_SOURCE"

	// Remote service errors
	ErrCodeUpstream        ErrorCode = "UPSTREAM_ERROR"
	ErrCodeTransportFailed ErrorCode = "TRANSPORT_FAILED"
)

// AppError carries a code and optional upstream context for a failure.
type AppError struct {
	Code    ErrorCode
	Message string
	Details string
	// StatusCode is the upstream HTTP status for ErrCodeUpstream, zero otherwise.
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with application context
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsFatal reports whether err should terminate a one-shot run with a
// non-zero exit status.
func IsFatal(err error) bool {
	switch CodeOf(err) {
	case ErrCodeConfigMissing, ErrCodeConfigInvalid, ErrCodeChangeSource:
		return true
	default:
		return false
	}
}

// ConfigMissing creates an error for a required configuration key that is unset.
func ConfigMissing(key string) *AppError {
	return New(ErrCodeConfigMissing, fmt.Sprintf("%s is required", key))
}

// ConfigInvalid creates an error for a configuration value that cannot be used.
func ConfigInvalid(key, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf("invalid %s", key),
		Details: reason,
	}
}

// Upstream creates an error for a non-success response from a remote API.
func Upstream(service string, status int, details string) *AppError {
	return &AppError{
		Code:       ErrCodeUpstream,
		Message:    fmt.Sprintf("%s request failed", service),
		Details:    details,
		StatusCode: status,
	}
}

// TransportFailed creates an error for a request that never produced a usable response.
func TransportFailed(service string, err error) *AppError {
	return Wrap(err, ErrCodeTransportFailed, fmt.Sprintf("%s request could not be completed", service))
}
