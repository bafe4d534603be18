package payment

import (
	"context"
	"fmt"

	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"
)

// StripeCheckoutGateway implements invoicing.PaymentGateway using Stripe
// Checkout hosted sessions.
type StripeCheckoutGateway struct {
	config *Config
	logger *zap.Logger
}

// Config holds configuration for the Stripe checkout gateway
type Config struct {
	// SecretKey is the Stripe secret API key (sk_test_xxx or sk_live_xxx)
	SecretKey string

	// Currency is the three-letter ISO currency code used for sessions
	Currency string
}

// Validate validates the gateway configuration
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("stripe: secret key is required")
	}
	if c.Currency == "" {
		return fmt.Errorf("stripe: currency is required")
	}
	return nil
}

// NewStripeCheckoutGateway creates a new Stripe checkout gateway
func NewStripeCheckoutGateway(config *Config, logger *zap.Logger) (*StripeCheckoutGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	stripe.Key = config.SecretKey

	return &StripeCheckoutGateway{
		config: config,
		logger: logger,
	}, nil
}

// CreateSession opens a hosted checkout session for one invoice
func (g *StripeCheckoutGateway) CreateSession(ctx context.Context, req invoicing.SessionRequest) (*invoicing.CheckoutSession, error) {
	g.logger.Debug("Creating Stripe checkout session",
		zap.String("invoice_id", req.InvoiceID),
		zap.Int64("amount", req.Amount))

	currency := req.Currency
	if currency == "" {
		currency = g.config.Currency
	}

	name := req.Description
	if name == "" {
		name = "Invoice " + req.InvoiceID
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"invoice_id": req.InvoiceID,
		},
	}

	sess, err := session.New(params)
	if err != nil {
		g.logger.Error("Failed to create Stripe checkout session",
			zap.String("invoice_id", req.InvoiceID),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	g.logger.Info("Created Stripe checkout session",
		zap.String("invoice_id", req.InvoiceID),
		zap.String("session_id", sess.ID))

	return &invoicing.CheckoutSession{
		ID:            sess.ID,
		RedirectURL:   sess.URL,
		PaymentStatus: mapPaymentStatus(sess.PaymentStatus),
	}, nil
}

// RetrieveSession fetches the current state of a checkout session. The
// payment status comes from Stripe, never from redirect parameters.
func (g *StripeCheckoutGateway) RetrieveSession(ctx context.Context, sessionID string) (*invoicing.CheckoutSession, error) {
	g.logger.Debug("Retrieving Stripe checkout session", zap.String("session_id", sessionID))

	sess, err := session.Get(sessionID, nil)
	if err != nil {
		g.logger.Error("Failed to retrieve Stripe checkout session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to retrieve checkout session: %w", err)
	}

	return &invoicing.CheckoutSession{
		ID:            sess.ID,
		RedirectURL:   sess.URL,
		PaymentStatus: mapPaymentStatus(sess.PaymentStatus),
	}, nil
}

func mapPaymentStatus(status stripe.CheckoutSessionPaymentStatus) invoicing.PaymentStatus {
	switch status {
	case stripe.CheckoutSessionPaymentStatusPaid,
		stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return invoicing.PaymentStatusPaid
	default:
		return invoicing.PaymentStatusUnpaid
	}
}

var _ invoicing.PaymentGateway = (*StripeCheckoutGateway)(nil)
