package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
	"github.com/mhassanrahi/invoice-asaan/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Payment errors
var (
	ErrNotPayable        = shared.NewDomainError("INVALID_INPUT", "Invoice is not payable")
	ErrPaymentIncomplete = shared.NewDomainError("PAYMENT_INCOMPLETE", "Payment has not been completed")
)

// PaymentOutcome is the outcome claimed by the checkout redirect. It is
// never trusted on its own; a success claim still goes through provider
// verification.
type PaymentOutcome string

const (
	OutcomeSuccess  PaymentOutcome = "success"
	OutcomeCanceled PaymentOutcome = "canceled"
)

// PaymentService drives invoice payment through a hosted checkout
// provider. Completion never trusts redirect parameters: the session is
// re-verified with the provider before the invoice is marked paid.
type PaymentService struct {
	invoiceRepo invoicing.InvoiceRepository
	gateway     invoicing.PaymentGateway
	notifier    invoicing.InvoiceNotifier
	successURL  string
	cancelURL   string
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	invoiceRepo invoicing.InvoiceRepository,
	gateway invoicing.PaymentGateway,
	notifier invoicing.InvoiceNotifier,
	successURL, cancelURL string,
) *PaymentService {
	return &PaymentService{
		invoiceRepo: invoiceRepo,
		gateway:     gateway,
		notifier:    notifier,
		successURL:  successURL,
		cancelURL:   cancelURL,
	}
}

// InitiatePayment opens a checkout session for a pending invoice and
// returns the URL the client should redirect to.
func (s *PaymentService) InitiatePayment(ctx context.Context, identity invoicing.Identity, invoiceID uuid.UUID) (*SessionResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	scope := invoicing.ScopeFor(identity)
	invoice, err := s.invoiceRepo.FindByIDInScope(ctx, scope, invoiceID)
	if err != nil {
		return nil, err
	}

	if !invoice.IsPending() {
		return nil, ErrNotPayable
	}
	if invoice.Value <= 0 {
		return nil, shared.ErrInvalidAmount
	}

	session, err := s.gateway.CreateSession(ctx, invoicing.SessionRequest{
		InvoiceID:   invoice.ID.String(),
		Description: invoice.Description,
		Amount:      invoice.Value,
		SuccessURL:  s.successURL,
		CancelURL:   s.cancelURL,
	})
	if err != nil {
		logger.L(ctx).Error("Failed to create checkout session",
			zap.String("invoice_id", invoiceID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("SESSION_CREATION_FAILED", "Failed to create payment session")
	}
	if session.RedirectURL == "" {
		logger.L(ctx).Error("Checkout session has no redirect URL",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("session_id", session.ID))
		return nil, shared.NewDomainError("SESSION_CREATION_FAILED", "Failed to create payment session")
	}

	return &SessionResponse{
		SessionID:   session.ID,
		RedirectURL: session.RedirectURL,
	}, nil
}

// CompletePayment resolves a checkout callback. A canceled outcome
// mutates nothing. A success claim is verified with the provider and,
// only if the provider reports the session paid, the invoice is marked
// paid. An unpaid or unknown session leaves the invoice untouched.
func (s *PaymentService) CompletePayment(ctx context.Context, identity invoicing.Identity, invoiceID uuid.UUID, sessionID string, outcome PaymentOutcome) (*PaymentResultResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	switch outcome {
	case OutcomeCanceled:
		return &PaymentResultResponse{Status: "canceled"}, nil
	case OutcomeSuccess:
	default:
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown payment outcome")
	}

	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Session id is required")
	}

	scope := invoicing.ScopeFor(identity)
	invoice, err := s.invoiceRepo.FindByIDInScope(ctx, scope, invoiceID)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		logger.L(ctx).Error("Failed to verify checkout session",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, shared.NewDomainError("EXTERNAL_SERVICE_FAILURE", "Failed to verify payment session")
	}

	if session.PaymentStatus != invoicing.PaymentStatusPaid {
		logger.L(ctx).Warn("Checkout session not paid, leaving invoice unchanged",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("session_id", sessionID),
			zap.String("payment_status", string(session.PaymentStatus)))
		return nil, ErrPaymentIncomplete
	}

	affected, err := s.invoiceRepo.UpdateStatusInScope(ctx, scope, invoiceID, invoicing.StatusPaid)
	if err != nil {
		logger.L(ctx).Error("Failed to mark invoice paid",
			zap.String("invoice_id", invoiceID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("STORE_FAILURE", "Failed to update invoice")
	}
	if affected == 0 {
		return nil, shared.ErrNotFound
	}

	invoice.Status = invoicing.StatusPaid
	_ = s.notifier.InvoicePaid(ctx, invoice)

	response := ToInvoiceResponse(invoice)
	return &PaymentResultResponse{Status: "paid", Invoice: &response}, nil
}
