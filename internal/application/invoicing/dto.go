package invoicing

import (
	"time"

	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
)

// CreateInvoiceRequest is the input for creating an invoice together with
// its customer. Value is a decimal currency string, e.g. "125.50".
type CreateInvoiceRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,max=255"`
	CustomerEmail string `json:"customer_email" binding:"required,email,max=255"`
	Value         string `json:"value" binding:"required"`
	Description   string `json:"description" binding:"max=2000"`
}

// UpdateStatusRequest is the input for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListFilter carries pagination and ordering for invoice listings
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
}

// InvoiceResponse is the outward shape of an invoice
type InvoiceResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	Value          int64     `json:"value"`
	Amount         string    `json:"amount"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"created_by"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StatusResponse describes one selectable invoice status
type StatusResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SessionResponse is returned when a checkout session has been opened
type SessionResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentResultResponse reports the result of a checkout callback.
// Status is "paid" once the provider confirmed payment, or "canceled"
// when the caller abandoned checkout.
type PaymentResultResponse struct {
	Status  string           `json:"status"`
	Invoice *InvoiceResponse `json:"invoice,omitempty"`
}

// ToInvoiceResponse maps a joined invoice row to its response shape
func ToInvoiceResponse(inv *invoicing.InvoiceWithCustomer) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.ID.String(),
		CustomerID:     inv.CustomerID.String(),
		CustomerName:   inv.CustomerName,
		CustomerEmail:  inv.CustomerEmail,
		Value:          inv.Value,
		Amount:         invoicing.FormatAmount(inv.Value),
		Description:    inv.Description,
		Status:         string(inv.Status),
		CreatedBy:      inv.CreatedBy,
		OrganizationID: inv.OrganizationID,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

// ToStatusResponses maps the canonical status list to its response shape
func ToStatusResponses(options []invoicing.StatusOption) []StatusResponse {
	out := make([]StatusResponse, len(options))
	for i, opt := range options {
		out[i] = StatusResponse{ID: string(opt.ID), Label: opt.Label}
	}
	return out
}
