package dto

import "net/http"

// Error codes shared between the domain layer and HTTP responses
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL"
	// ErrCodeValidation is used when request binding or validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"

	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "INVALID_TOKEN"
	// ErrCodeTokenRevoked is used when the auth token has been blacklisted
	ErrCodeTokenRevoked = "TOKEN_REVOKED"

	// ErrCodeNotFound is used when a resource is not found or out of the
	// caller's scope
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidAmount is used when a currency amount cannot be parsed
	ErrCodeInvalidAmount = "INVALID_AMOUNT"

	// ErrCodePaymentIncomplete is used when a checkout session has not been paid
	ErrCodePaymentIncomplete = "PAYMENT_INCOMPLETE"
	// ErrCodeSessionCreationFailed is used when the payment provider rejects a session
	ErrCodeSessionCreationFailed = "SESSION_CREATION_FAILED"
	// ErrCodeExternalServiceFailure is used when a provider call fails
	ErrCodeExternalServiceFailure = "EXTERNAL_SERVICE_FAILURE"
	// ErrCodeStoreFailure is used when persistence fails
	ErrCodeStoreFailure = "STORE_FAILURE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:    http.StatusInternalServerError,
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeTokenRevoked: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidAmount: http.StatusBadRequest,

	ErrCodePaymentIncomplete:      http.StatusConflict,
	ErrCodeSessionCreationFailed:  http.StatusBadGateway,
	ErrCodeExternalServiceFailure: http.StatusBadGateway,
	ErrCodeStoreFailure:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
