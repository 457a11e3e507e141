package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified client error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithRetryable overrides the retryable hint and returns the receiver.
func (e *AppError) WithRetryable(retryable bool) *AppError {
	e.Retryable = retryable
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Client error constructors ---

// MissingCredentials creates the error raised when the customer id or the
// password is empty after resolution.
func MissingCredentials() *AppError {
	return &AppError{
		Code:    ErrCodeMissingCredentials,
		Message: "Customer ID (id) and Password (password) are required",
		Details: map[string]any{"fields": []string{"id", "password"}},
	}
}

// MissingServiceURL creates the error raised when a service operation is
// invoked without its endpoint. field is the option key, e.g. "pricing_service_url".
func MissingServiceURL(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingServiceURL,
		Message: fmt.Sprintf("Service URL (%s) is required to call this service", field),
		Details: map[string]any{"field": field},
	}
}

// TransportError creates an error for a failed exchange with a service.
// kind names the failure class ("timeout", "connection", "http", "fault", ...).
func TransportError(service, kind string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeTransport,
		Message:   fmt.Sprintf("The %s service request failed (%s).", service, kind),
		Retryable: true,
		Details:   map[string]any{"service": service, "kind": kind},
		Cause:     cause,
	}
}

// ParseError creates an error for a response that could not be interpreted.
func ParseError(reason string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("Unable to parse service response: %s", reason),
		Cause:   cause,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsMissingCredentials reports whether err is a MissingCredentials error.
func IsMissingCredentials(err error) bool { return HasCode(err, ErrCodeMissingCredentials) }

// IsMissingServiceURL reports whether err is a MissingServiceURL error.
func IsMissingServiceURL(err error) bool { return HasCode(err, ErrCodeMissingServiceURL) }

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool { return HasCode(err, ErrCodeTransport) }

// IsParse reports whether err is a ParseError.
func IsParse(err error) bool { return HasCode(err, ErrCodeParse) }
