package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock implementation of invoicing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) CreateWithCustomer(ctx context.Context, customer *invoicing.Customer, invoice *invoicing.Invoice) error {
	args := m.Called(ctx, customer, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByIDInScope(ctx context.Context, scope invoicing.AccessScope, id uuid.UUID) (*invoicing.InvoiceWithCustomer, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.InvoiceWithCustomer), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllInScope(ctx context.Context, scope invoicing.AccessScope, filter shared.Filter) ([]invoicing.InvoiceWithCustomer, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoicing.InvoiceWithCustomer), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateStatusInScope(ctx context.Context, scope invoicing.AccessScope, id uuid.UUID, status invoicing.Status) (int64, error) {
	args := m.Called(ctx, scope, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInScope(ctx context.Context, scope invoicing.AccessScope, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, scope, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentGateway is a mock implementation of invoicing.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateSession(ctx context.Context, req invoicing.SessionRequest) (*invoicing.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGateway) RetrieveSession(ctx context.Context, sessionID string) (*invoicing.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.CheckoutSession), args.Error(1)
}

// MockNotifier is a mock implementation of invoicing.InvoiceNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) InvoiceCreated(ctx context.Context, invoice *invoicing.Invoice, customer *invoicing.Customer) error {
	args := m.Called(ctx, invoice, customer)
	return args.Error(0)
}

func (m *MockNotifier) InvoicePaid(ctx context.Context, invoice *invoicing.InvoiceWithCustomer) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}
