package invoicing

import (
	"regexp"

	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
)

// Customer represents the billing recipient of an invoice. A customer row
// is created together with each invoice and is immutable afterwards; it is
// never removed when its invoice is deleted.
type Customer struct {
	shared.BaseEntity
	Name           string
	Email          string
	OrganizationID *string
}

// NewCustomer creates a new customer owned by the caller's scope.
// organizationID is nil for private-scope callers.
func NewCustomer(name, email string, organizationID *string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if err := validateCustomerEmail(email); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		Email:          email,
		OrganizationID: organizationID,
	}, nil
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_INPUT", "Customer name cannot exceed 255 characters")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateCustomerEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer email cannot be empty")
	}
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_INPUT", "Customer email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_INPUT", "Invalid customer email format")
	}
	return nil
}
