package invoicing

import "context"

// PaymentStatus mirrors the processor's session payment state. Only
// PaymentStatusPaid completes an invoice; every other value leaves it
// untouched.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// CheckoutSession is a hosted payment session created at the processor.
type CheckoutSession struct {
	ID            string
	RedirectURL   string
	PaymentStatus PaymentStatus
}

// SessionRequest carries what the processor needs to open a session for
// one invoice.
type SessionRequest struct {
	InvoiceID   string
	Description string
	// Amount is in minor currency units.
	Amount     int64
	Currency   string
	SuccessURL string
	CancelURL  string
}

// PaymentGateway is the outbound port to the payment processor.
// RetrieveSession exists so the callback path can re-verify the session
// state server-side instead of trusting redirect parameters.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
