package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

func testInvoiceAndCustomer(t *testing.T) (*invoicing.Invoice, *invoicing.Customer) {
	t.Helper()
	customer, err := invoicing.NewCustomer("Acme Corp", "billing@acme.test", nil)
	require.NoError(t, err)
	invoice, err := invoicing.NewInvoice(customer.ID, 1000, "Consulting", invoicing.Identity{UserID: "user-1"})
	require.NoError(t, err)
	return invoice, customer
}

func TestEmailNotifier_InvoiceCreated(t *testing.T) {
	t.Run("dispatches mail in the background", func(t *testing.T) {
		n := NewEmailNotifier(Config{From: "billing@localhost"}, zap.NewNop())

		sent := make(chan *gomail.Message, 1)
		n.sendMail = func(msgs ...*gomail.Message) error {
			sent <- msgs[0]
			return nil
		}

		invoice, customer := testInvoiceAndCustomer(t)
		require.NoError(t, n.InvoiceCreated(context.Background(), invoice, customer))

		select {
		case m := <-sent:
			assert.Equal(t, []string{"billing@acme.test"}, m.GetHeader("To"))
			assert.Contains(t, m.GetHeader("Subject")[0], invoice.ID.String())
		case <-time.After(2 * time.Second):
			t.Fatal("notification was never dispatched")
		}
	})

	t.Run("does not block on a slow mail server", func(t *testing.T) {
		n := NewEmailNotifier(Config{From: "billing@localhost"}, zap.NewNop())

		release := make(chan struct{})
		n.sendMail = func(msgs ...*gomail.Message) error {
			<-release
			return nil
		}
		defer close(release)

		invoice, customer := testInvoiceAndCustomer(t)

		// Returns while delivery is still pending.
		require.NoError(t, n.InvoiceCreated(context.Background(), invoice, customer))
	})

	t.Run("swallows delivery failures", func(t *testing.T) {
		n := NewEmailNotifier(Config{From: "billing@localhost"}, zap.NewNop())

		attempted := make(chan struct{}, 1)
		n.sendMail = func(msgs ...*gomail.Message) error {
			attempted <- struct{}{}
			return errors.New("smtp unavailable")
		}

		invoice, customer := testInvoiceAndCustomer(t)
		require.NoError(t, n.InvoiceCreated(context.Background(), invoice, customer))

		select {
		case <-attempted:
		case <-time.After(2 * time.Second):
			t.Fatal("delivery was never attempted")
		}
	})
}

func TestEmailNotifier_InvoicePaid(t *testing.T) {
	n := NewEmailNotifier(Config{From: "billing@localhost"}, zap.NewNop())

	sent := make(chan *gomail.Message, 1)
	n.sendMail = func(msgs ...*gomail.Message) error {
		sent <- msgs[0]
		return nil
	}

	invoice, customer := testInvoiceAndCustomer(t)
	joined := &invoicing.InvoiceWithCustomer{
		Invoice:       *invoice,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
	}
	require.NoError(t, n.InvoicePaid(context.Background(), joined))

	select {
	case m := <-sent:
		assert.Equal(t, []string{"billing@acme.test"}, m.GetHeader("To"))
		assert.Contains(t, m.GetHeader("Subject")[0], "Payment received")
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}
