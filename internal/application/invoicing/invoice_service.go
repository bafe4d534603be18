package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
	"github.com/mhassanrahi/invoice-asaan/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// InvoiceService handles invoice lifecycle operations. Every operation
// resolves the caller's access scope first; storage failures are logged
// with their cause and surfaced as generic store errors.
type InvoiceService struct {
	invoiceRepo invoicing.InvoiceRepository
	notifier    invoicing.InvoiceNotifier
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo invoicing.InvoiceRepository, notifier invoicing.InvoiceNotifier) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		notifier:    notifier,
	}
}

// Create creates a customer and a pending invoice for them in one
// transaction. The invoice is owned by the caller's scope.
func (s *InvoiceService) Create(ctx context.Context, identity invoicing.Identity, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	value, err := invoicing.ParseAmount(req.Value)
	if err != nil {
		return nil, err
	}

	var orgID *string
	if identity.InOrganization() {
		org := identity.OrganizationID
		orgID = &org
	}

	customer, err := invoicing.NewCustomer(req.CustomerName, req.CustomerEmail, orgID)
	if err != nil {
		return nil, err
	}

	invoice, err := invoicing.NewInvoice(customer.ID, value, req.Description, identity)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.CreateWithCustomer(ctx, customer, invoice); err != nil {
		logger.L(ctx).Error("Failed to persist invoice",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("STORE_FAILURE", "Failed to create invoice")
	}

	// Notification is best effort; the notifier logs its own failures.
	_ = s.notifier.InvoiceCreated(ctx, invoice, customer)

	response := ToInvoiceResponse(&invoicing.InvoiceWithCustomer{
		Invoice:       *invoice,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
	})
	return &response, nil
}

// List returns the invoices visible to the caller. Lookup failures are
// logged and reported as an empty list rather than an error.
func (s *InvoiceService) List(ctx context.Context, identity invoicing.Identity, filter ListFilter) ([]InvoiceResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	scope := invoicing.ScopeFor(identity)
	invoices, err := s.invoiceRepo.FindAllInScope(ctx, scope, domainFilter)
	if err != nil {
		logger.L(ctx).Error("Failed to list invoices", zap.Error(err))
		return []InvoiceResponse{}, nil
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// Get returns a single invoice visible to the caller
func (s *InvoiceService) Get(ctx context.Context, identity invoicing.Identity, id uuid.UUID) (*InvoiceResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	scope := invoicing.ScopeFor(identity)
	invoice, err := s.invoiceRepo.FindByIDInScope(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// UpdateStatus transitions an invoice to a status from the canonical
// list. The scope predicate sits in the update's WHERE clause, so an id
// outside the caller's scope matches zero rows; that is success with no
// effect, never an error.
func (s *InvoiceService) UpdateStatus(ctx context.Context, identity invoicing.Identity, id uuid.UUID, req UpdateStatusRequest) (*InvoiceResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	status := invoicing.Status(req.Status)
	if !invoicing.IsValidStatus(status) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown invoice status")
	}

	scope := invoicing.ScopeFor(identity)
	affected, err := s.invoiceRepo.UpdateStatusInScope(ctx, scope, id, status)
	if err != nil {
		logger.L(ctx).Error("Failed to update invoice status",
			zap.String("invoice_id", id.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, shared.NewDomainError("STORE_FAILURE", "Failed to update invoice")
	}
	if affected == 0 {
		return nil, nil
	}

	return s.Get(ctx, identity, id)
}

// Delete removes an invoice visible to the caller. The customer record
// is kept. Like UpdateStatus, an out-of-scope id deletes zero rows and
// still reads as success.
func (s *InvoiceService) Delete(ctx context.Context, identity invoicing.Identity, id uuid.UUID) error {
	if !identity.IsAuthenticated() {
		return shared.ErrUnauthorized
	}

	scope := invoicing.ScopeFor(identity)
	if _, err := s.invoiceRepo.DeleteInScope(ctx, scope, id); err != nil {
		logger.L(ctx).Error("Failed to delete invoice",
			zap.String("invoice_id", id.String()),
			zap.Error(err))
		return shared.NewDomainError("STORE_FAILURE", "Failed to delete invoice")
	}
	return nil
}

// Statuses returns the canonical, ordered status list clients render
// pickers from.
func (s *InvoiceService) Statuses() []StatusResponse {
	return ToStatusResponses(invoicing.AvailableStatuses)
}
