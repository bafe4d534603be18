package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
)

// Invoice is the aggregate root of the invoicing context. Value is an
// integer count of minor currency units. An invoice belongs either to an
// organization (OrganizationID set, shared by all members) or to a single
// user (OrganizationID nil, private to CreatedBy).
type Invoice struct {
	shared.BaseEntity
	CustomerID     uuid.UUID
	Value          int64
	Description    string
	Status         Status
	CreatedBy      string
	OrganizationID *string
}

// NewInvoice creates a pending invoice for the given customer, owned by
// the caller identity.
func NewInvoice(customerID uuid.UUID, value int64, description string, identity Identity) (*Invoice, error) {
	if !identity.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice requires a customer")
	}
	if value < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice value cannot be negative")
	}

	inv := &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customerID,
		Value:       value,
		Description: description,
		Status:      DefaultStatus,
		CreatedBy:   identity.UserID,
	}
	if identity.InOrganization() {
		org := identity.OrganizationID
		inv.OrganizationID = &org
	}
	return inv, nil
}

// SetStatus transitions the invoice to a status from the canonical list.
func (i *Invoice) SetStatus(status Status) error {
	if !IsValidStatus(status) {
		return shared.NewDomainError("INVALID_INPUT", "Unknown invoice status")
	}
	i.Status = status
	i.UpdatedAt = time.Now()
	return nil
}

// IsPending reports whether the invoice is awaiting payment.
func (i *Invoice) IsPending() bool {
	return i.Status == StatusPending
}

// IsPaid reports whether the invoice has been paid.
func (i *Invoice) IsPaid() bool {
	return i.Status == StatusPaid
}

// Payable reports whether a payment session may be opened: the invoice
// must be pending and carry a positive value.
func (i *Invoice) Payable() bool {
	return i.IsPending() && i.Value > 0
}
