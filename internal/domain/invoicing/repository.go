package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
)

// InvoiceWithCustomer is an invoice joined with its customer row, the
// shape returned by scoped reads.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string
	CustomerEmail string
}

// InvoiceRepository persists invoices and their customers. Every read and
// mutation takes an AccessScope; implementations must translate it into
// the query predicate and never offer an unscoped variant.
type InvoiceRepository interface {
	// CreateWithCustomer inserts the customer and the invoice referencing
	// it in a single transaction.
	CreateWithCustomer(ctx context.Context, customer *Customer, invoice *Invoice) error

	// FindByIDInScope returns the invoice joined with its customer, or
	// shared.ErrNotFound when no row matches both the id and the scope.
	FindByIDInScope(ctx context.Context, scope AccessScope, id uuid.UUID) (*InvoiceWithCustomer, error)

	// FindAllInScope returns all invoices visible to the scope, joined
	// with their customers.
	FindAllInScope(ctx context.Context, scope AccessScope, filter shared.Filter) ([]InvoiceWithCustomer, error)

	// UpdateStatusInScope sets the status of the invoice matching id and
	// scope, returning the number of rows affected. An out-of-scope id
	// affects zero rows and is not an error.
	UpdateStatusInScope(ctx context.Context, scope AccessScope, id uuid.UUID, status Status) (int64, error)

	// DeleteInScope deletes the invoice matching id and scope, returning
	// the number of rows affected. The customer row is left in place.
	DeleteInScope(ctx context.Context, scope AccessScope, id uuid.UUID) (int64, error)
}
