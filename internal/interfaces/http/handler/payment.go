package handler

import (
	"github.com/gin-gonic/gin"
	appinvoicing "github.com/mhassanrahi/invoice-asaan/internal/application/invoicing"
	"github.com/mhassanrahi/invoice-asaan/internal/interfaces/http/middleware"
)

// PaymentHandler handles invoice payment endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *appinvoicing.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *appinvoicing.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("/:id/payment", h.InitiatePayment)
		invoices.GET("/:id/payment/callback", h.CompletePayment)
	}
}

// InitiatePayment opens a checkout session for a pending invoice and
// returns the redirect URL
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	identity := middleware.GetIdentity(c)
	session, err := h.paymentService.InitiatePayment(c.Request.Context(), identity, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, session)
}

// CompletePayment resolves a checkout redirect. A canceled outcome
// mutates nothing; a success claim is never trusted on its own — the
// invoice is marked paid only after the provider confirms the session.
func (h *PaymentHandler) CompletePayment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	outcome := appinvoicing.PaymentOutcome(c.DefaultQuery("outcome", string(appinvoicing.OutcomeSuccess)))
	sessionID := c.Query("session_id")

	identity := middleware.GetIdentity(c)
	result, err := h.paymentService.CompletePayment(c.Request.Context(), identity, id, sessionID, outcome)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
