package handlers

import (
	"net/http"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecipientHandler handles HTTP requests for recipients
type RecipientHandler struct {
	service service.RecipientServiceInterface
}

// NewRecipientHandler creates a new recipient handler
func NewRecipientHandler(service service.RecipientServiceInterface) *RecipientHandler {
	return &RecipientHandler{service: service}
}

// CreateRecipient handles POST /api/v1/recipients
// @Summary Create a new recipient
// @Tags recipients
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param recipient body service.CreateRecipientRequest true "Recipient data"
// @Success 201 {object} service.RecipientResponse "Successfully created recipient"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recipients [post]
func (h *RecipientHandler) CreateRecipient(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	var req service.CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	recipient, err := h.service.Create(orgID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipient", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, recipient)
}

// ListRecipients handles GET /api/v1/recipients
// @Summary List recipients
// @Description List the organization's recipients, optionally only active ones
// @Tags recipients
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param active query bool false "Only active recipients"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} service.RecipientListResponse "Recipients"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recipients [get]
func (h *RecipientHandler) ListRecipients(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	activeOnly := c.Query("active") == "true"
	page, pageSize := pagination(c)

	recipients, err := h.service.List(orgID, activeOnly, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recipients", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipients)
}

// GetRecipient handles GET /api/v1/recipients/:id
// @Summary Get recipient by ID
// @Tags recipients
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Recipient ID (UUID)"
// @Success 200 {object} service.RecipientResponse "Recipient"
// @Failure 400 {object} map[string]interface{} "Invalid recipient ID"
// @Failure 404 {object} map[string]interface{} "Recipient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recipients/{id} [get]
func (h *RecipientHandler) GetRecipient(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient ID: invalid UUID format"})
		return
	}

	recipient, err := h.service.GetByID(orgID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recipient", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipient)
}

// UpdateRecipient handles PUT /api/v1/recipients/:id
// @Summary Update recipient details
// @Tags recipients
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Recipient ID (UUID)"
// @Param recipient body service.UpdateRecipientRequest true "Fields to update"
// @Success 200 {object} service.RecipientResponse "Updated recipient"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Recipient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recipients/{id} [put]
func (h *RecipientHandler) UpdateRecipient(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient ID: invalid UUID format"})
		return
	}

	var req service.UpdateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	recipient, err := h.service.Update(orgID, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipient", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipient)
}

// DeleteRecipient handles DELETE /api/v1/recipients/:id
// @Summary Delete a recipient
// @Tags recipients
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Recipient ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid recipient ID"
// @Failure 404 {object} map[string]interface{} "Recipient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recipients/{id} [delete]
func (h *RecipientHandler) DeleteRecipient(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipient", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
