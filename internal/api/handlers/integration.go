package handlers

import (
	"errors"
	"net/http"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IntegrationHandler handles HTTP requests for notification integrations
type IntegrationHandler struct {
	service service.IntegrationServiceInterface
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(service service.IntegrationServiceInterface) *IntegrationHandler {
	return &IntegrationHandler{service: service}
}

// CreateIntegration handles POST /api/v1/integrations
// @Summary Create a notification integration
// @Description Configure a webhook, email, sms or api integration. One per channel type per organization.
// @Tags integrations
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param integration body service.CreateIntegrationRequest true "Integration data"
// @Success 201 {object} service.IntegrationResponse "Successfully created integration"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Integration already exists for this channel"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /integrations [post]
func (h *IntegrationHandler) CreateIntegration(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	var req service.CreateIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	integration, err := h.service.Create(orgID, &req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidIntegrationType) || apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create integration", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, integration)
}

// ListIntegrations handles GET /api/v1/integrations
// @Summary List the organization's integrations
// @Tags integrations
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Success 200 {array} service.IntegrationResponse "Integrations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /integrations [get]
func (h *IntegrationHandler) ListIntegrations(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	integrations, err := h.service.List(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list integrations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, integrations)
}

// GetIntegration handles GET /api/v1/integrations/:id
// @Summary Get integration by ID
// @Tags integrations
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Integration ID (UUID)"
// @Success 200 {object} service.IntegrationResponse "Integration"
// @Failure 400 {object} map[string]interface{} "Invalid integration ID"
// @Failure 404 {object} map[string]interface{} "Integration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /integrations/{id} [get]
func (h *IntegrationHandler) GetIntegration(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid integration ID: invalid UUID format"})
		return
	}

	integration, err := h.service.GetByID(orgID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get integration", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, integration)
}

// UpdateIntegration handles PUT /api/v1/integrations/:id
// @Summary Update integration settings
// @Tags integrations
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Integration ID (UUID)"
// @Param integration body service.UpdateIntegrationRequest true "Fields to update"
// @Success 200 {object} service.IntegrationResponse "Updated integration"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Integration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /integrations/{id} [put]
func (h *IntegrationHandler) UpdateIntegration(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid integration ID: invalid UUID format"})
		return
	}

	var req service.UpdateIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	integration, err := h.service.Update(orgID, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update integration", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, integration)
}

// SetIntegrationActive handles PATCH /api/v1/integrations/:id/active
// @Summary Enable or disable an integration
// @Description Toggle dispatch over this integration without touching its configuration
// @Tags integrations
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Integration ID (UUID)"
// @Param body body object true "Active flag" SchemaExample({"active": true})
// @Success 200 {object} service.IntegrationResponse "Updated integration"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Integration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /integrations/{id}/active [patch]
func (h *IntegrationHandler) SetIntegrationActive(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid integration ID: invalid UUID format"})
		return
	}

	var body struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	integration, err := h.service.SetActive(orgID, id, *body.Active)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update integration", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, integration)
}

// DeleteIntegration handles DELETE /api/v1/integrations/:id
// @Summary Delete an integration
// @Tags integrations
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Integration ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid integration ID"
// @Failure 404 {object} map[string]interface{} "Integration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /integrations/{id} [delete]
func (h *IntegrationHandler) DeleteIntegration(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid integration ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete integration", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
