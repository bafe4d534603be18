package invoicing

import "context"

// InvoiceNotifier delivers invoice lifecycle notices to the customer.
// Delivery is best effort: callers log failures and continue.
type InvoiceNotifier interface {
	InvoiceCreated(ctx context.Context, invoice *Invoice, customer *Customer) error
	InvoicePaid(ctx context.Context, invoice *InvoiceWithCustomer) error
}
