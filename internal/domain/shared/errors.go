package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrUnauthorized    = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidAmount   = NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	ErrStoreFailure    = NewDomainError("STORE_FAILURE", "Unexpected persistence failure")
	ErrExternalService = NewDomainError("EXTERNAL_SERVICE_FAILURE", "External service failure")
)
