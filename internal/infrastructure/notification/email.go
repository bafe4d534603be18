package notification

import (
	"context"
	"fmt"

	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings for the email notifier
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier implements invoicing.InvoiceNotifier over SMTP. Delivery
// runs in the background so a slow mail server never holds up the
// request that triggered the notification; failures are logged only.
type EmailNotifier struct {
	sendMail func(m ...*gomail.Message) error
	from     string
	logger   *zap.Logger
}

// NewEmailNotifier creates a new SMTP-backed invoice notifier
func NewEmailNotifier(cfg Config, logger *zap.Logger) *EmailNotifier {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &EmailNotifier{
		sendMail: dialer.DialAndSend,
		from:     cfg.From,
		logger:   logger,
	}
}

// InvoiceCreated sends the customer a notice that an invoice was issued
func (n *EmailNotifier) InvoiceCreated(ctx context.Context, invoice *invoicing.Invoice, customer *invoicing.Customer) error {
	subject := fmt.Sprintf("Invoice %s", invoice.ID)
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nA new invoice for %s has been issued to you.\r\n\r\nDescription: %s\r\n",
		customer.Name,
		invoicing.FormatAmount(invoice.Value),
		invoice.Description,
	)
	return n.send(customer.Email, subject, body)
}

// InvoicePaid sends the customer a payment confirmation
func (n *EmailNotifier) InvoicePaid(ctx context.Context, invoice *invoicing.InvoiceWithCustomer) error {
	subject := fmt.Sprintf("Payment received for invoice %s", invoice.ID)
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour payment of %s has been received. Thank you.\r\n",
		invoice.CustomerName,
		invoicing.FormatAmount(invoice.Value),
	)
	return n.send(invoice.CustomerEmail, subject, body)
}

func (n *EmailNotifier) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	go func() {
		if err := n.sendMail(m); err != nil {
			n.logger.Warn("Failed to send invoice email",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
			return
		}
		n.logger.Info("Sent invoice email",
			zap.String("to", to),
			zap.String("subject", subject))
	}()
	return nil
}

var _ invoicing.InvoiceNotifier = (*EmailNotifier)(nil)

// NopNotifier discards all notifications. Used when email is disabled.
type NopNotifier struct{}

// NewNopNotifier creates a notifier that does nothing
func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

// InvoiceCreated implements invoicing.InvoiceNotifier
func (NopNotifier) InvoiceCreated(context.Context, *invoicing.Invoice, *invoicing.Customer) error {
	return nil
}

// InvoicePaid implements invoicing.InvoiceNotifier
func (NopNotifier) InvoicePaid(context.Context, *invoicing.InvoiceWithCustomer) error {
	return nil
}

var _ invoicing.InvoiceNotifier = (*NopNotifier)(nil)
