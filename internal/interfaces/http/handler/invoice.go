package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appinvoicing "github.com/mhassanrahi/invoice-asaan/internal/application/invoicing"
	"github.com/mhassanrahi/invoice-asaan/internal/interfaces/http/dto"
	"github.com/mhassanrahi/invoice-asaan/internal/interfaces/http/middleware"
)

// InvoiceHandler handles invoice API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *appinvoicing.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *appinvoicing.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/statuses", h.Statuses)
		invoices.GET("/:id", h.Get)
		invoices.PUT("/:id/status", h.UpdateStatus)
		invoices.DELETE("/:id", h.Delete)
	}
}

// Create creates a customer and a pending invoice for them
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req appinvoicing.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	identity := middleware.GetIdentity(c)
	invoice, err := h.invoiceService.Create(c.Request.Context(), identity, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// List returns the invoices visible to the caller
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter appinvoicing.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	identity := middleware.GetIdentity(c)
	invoices, err := h.invoiceService.List(c.Request.Context(), identity, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// Get returns a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	identity := middleware.GetIdentity(c)
	invoice, err := h.invoiceService.Get(c.Request.Context(), identity, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// UpdateStatus transitions an invoice to a new status
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req appinvoicing.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	identity := middleware.GetIdentity(c)
	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), identity, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Delete removes an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	identity := middleware.GetIdentity(c)
	if err := h.invoiceService.Delete(c.Request.Context(), identity, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Statuses returns the canonical status list
func (h *InvoiceHandler) Statuses(c *gin.Context) {
	h.Success(c, h.invoiceService.Statuses())
}

// bindID binds the :id path parameter, responding with 400 on failure
func (h *BaseHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid invoice id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid invoice id")
		return uuid.Nil, false
	}
	return id, true
}
