package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/logger"
	"mailroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles HTTP requests for billing
type BillingHandler struct {
	service service.BillingServiceInterface
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(service service.BillingServiceInterface) *BillingHandler {
	return &BillingHandler{service: service}
}

// CreateCheckoutSession handles POST /api/v1/billing/create-checkout-session
// @Summary Start a subscription checkout
// @Description Create a provider checkout session for the selected plan and return its redirect URL
// @Tags billing
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param checkout body service.CheckoutSessionRequest true "Plan selection"
// @Success 200 {object} service.CheckoutSessionResponse "Checkout session"
// @Failure 400 {object} map[string]interface{} "Invalid plan or billing not configured"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /billing/create-checkout-session [post]
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	var req service.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.service.CreateCheckoutSession(orgID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidPlanType) || errors.Is(err, apperrors.ErrBillingNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// CreatePortalSession handles POST /api/v1/billing/create-portal-session
// @Summary Open the billing portal
// @Description Create a provider billing portal session for the organization's customer
// @Tags billing
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Success 200 {object} service.PortalSessionResponse "Portal session"
// @Failure 400 {object} map[string]interface{} "Billing not configured"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /billing/create-portal-session [post]
func (h *BillingHandler) CreatePortalSession(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	session, err := h.service.CreatePortalSession(orgID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrBillingNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create portal session", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// HandleWebhook handles POST /api/billing/webhook. The endpoint is public;
// authenticity comes from the provider signature, never from a bearer token.
// @Summary Billing provider webhook
// @Tags billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]interface{} "Processed"
// @Failure 400 {object} map[string]interface{} "Invalid signature or payload"
// @Router /billing/webhook [post]
func (h *BillingHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	if err := h.service.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		// A 4xx tells the provider not to retry; signature failures and
		// malformed payloads are not recoverable by retrying.
		logger.New().WithError(err).Warn("billing webhook rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
