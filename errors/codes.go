package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeMissingCredentials indicates the customer id or password did not resolve.
	ErrCodeMissingCredentials ErrorCode = "MISSING_CREDENTIALS"
	// ErrCodeMissingServiceURL indicates a service was called without an endpoint.
	ErrCodeMissingServiceURL ErrorCode = "MISSING_SERVICE_URL"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Collaborator errors
const (
	// ErrCodeTransport indicates a network, HTTP or SOAP fault failure.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeParse indicates a response that could not be interpreted.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransport: true,
}

// IsRetryableCode returns true if the error code may be retried by default.
// Transport errors refine this per failure through AppError.Retryable.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
