package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/imaging"
	"mailroom-backend/internal/repository"
	"mailroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MailItemHandler handles HTTP requests for mail items
type MailItemHandler struct {
	service      service.MailItemServiceInterface
	photoOptions imaging.Options
}

// NewMailItemHandler creates a new mail item handler
func NewMailItemHandler(service service.MailItemServiceInterface, photoOptions imaging.Options) *MailItemHandler {
	return &MailItemHandler{service: service, photoOptions: photoOptions}
}

// tenantID extracts the organization id resolved by the tenant middleware
func tenantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("organization_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// pagination reads page and page_size query parameters with defaults
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	return page, pageSize
}

// CreateMailItem handles POST /api/v1/mail-items
// @Summary Log a new mail item at intake
// @Description Create a mail item in the current organization, starting at pending status
// @Tags mail-items
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param item body service.CreateMailItemRequest true "Mail item data"
// @Success 201 {object} service.MailItemResponse "Successfully created mail item"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 402 {object} map[string]interface{} "Monthly package limit reached"
// @Failure 404 {object} map[string]interface{} "Recipient or storage location not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items [post]
func (h *MailItemHandler) CreateMailItem(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	var req service.CreateMailItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Create(orgID, &req)
	if err != nil {
		switch {
		case apperrors.IsUsageLimit(err):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidMailItemType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mail item", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListMailItems handles GET /api/v1/mail-items
// @Summary List mail items
// @Description List the organization's mail items with optional status, type and recipient filters
// @Tags mail-items
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param status query string false "Filter by status (pending, notified, delivered)"
// @Param type query string false "Filter by type (package, letter, certified_mail, express)"
// @Param recipient_id query string false "Filter by recipient UUID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} service.MailItemListResponse "Mail items"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items [get]
func (h *MailItemHandler) ListMailItems(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	var filter repository.MailItemFilter
	if status := c.Query("status"); status != "" {
		s := models.MailItemStatus(status)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter: " + status})
			return
		}
		filter.Status = s
	}
	if itemType := c.Query("type"); itemType != "" {
		t := models.MailItemType(itemType)
		if !t.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type filter: " + itemType})
			return
		}
		filter.Type = t
	}
	if recipientStr := c.Query("recipient_id"); recipientStr != "" {
		recipientID, err := uuid.Parse(recipientStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient ID: invalid UUID format"})
			return
		}
		filter.RecipientID = &recipientID
	}

	page, pageSize := pagination(c)
	items, err := h.service.List(orgID, filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list mail items", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMailItem handles GET /api/v1/mail-items/:id
// @Summary Get mail item by ID
// @Tags mail-items
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Mail item ID (UUID)"
// @Success 200 {object} service.MailItemResponse "Mail item"
// @Failure 400 {object} map[string]interface{} "Invalid mail item ID"
// @Failure 404 {object} map[string]interface{} "Mail item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items/{id} [get]
func (h *MailItemHandler) GetMailItem(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mail item ID: invalid UUID format"})
		return
	}

	item, err := h.service.GetByID(orgID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get mail item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateMailItem handles PUT /api/v1/mail-items/:id
// @Summary Update mail item details
// @Description Update descriptive fields; status only changes through notify and deliver
// @Tags mail-items
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Mail item ID (UUID)"
// @Param item body service.UpdateMailItemRequest true "Fields to update"
// @Success 200 {object} service.MailItemResponse "Updated mail item"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Mail item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items/{id} [put]
func (h *MailItemHandler) UpdateMailItem(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mail item ID: invalid UUID format"})
		return
	}

	var req service.UpdateMailItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Update(orgID, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mail item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// NotifyMailItem handles POST /api/v1/mail-items/:id/notify
// @Summary Mark a mail item as notified
// @Description Transition pending to notified and dispatch pickup notifications. Repeating the call is a no-op.
// @Tags mail-items
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Mail item ID (UUID)"
// @Success 200 {object} service.MailItemResponse "Notified mail item"
// @Failure 400 {object} map[string]interface{} "Invalid mail item ID"
// @Failure 404 {object} map[string]interface{} "Mail item not found"
// @Failure 409 {object} map[string]interface{} "Transition not allowed from current status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items/{id}/notify [post]
func (h *MailItemHandler) NotifyMailItem(c *gin.Context) {
	h.transition(c, h.service.Notify)
}

// DeliverMailItem handles POST /api/v1/mail-items/:id/deliver
// @Summary Mark a mail item as delivered
// @Description Transition pending or notified to delivered. Repeating the call is a no-op.
// @Tags mail-items
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Mail item ID (UUID)"
// @Success 200 {object} service.MailItemResponse "Delivered mail item"
// @Failure 400 {object} map[string]interface{} "Invalid mail item ID"
// @Failure 404 {object} map[string]interface{} "Mail item not found"
// @Failure 409 {object} map[string]interface{} "Transition not allowed from current status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items/{id}/deliver [post]
func (h *MailItemHandler) DeliverMailItem(c *gin.Context) {
	h.transition(c, h.service.Deliver)
}

func (h *MailItemHandler) transition(c *gin.Context, op func(orgID, id uuid.UUID) (*service.MailItemResponse, error)) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mail item ID: invalid UUID format"})
		return
	}

	item, err := op(orgID, id)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsInvalidTransition(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transition mail item", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UploadMailItemPhoto handles POST /api/v1/mail-items/:id/photo
// @Summary Attach a photo to a mail item
// @Description Accepts a multipart image upload, downsizes and re-encodes it, and stores it on the item
// @Tags mail-items
// @Accept multipart/form-data
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Mail item ID (UUID)"
// @Param photo formData file true "Photo file (jpeg, png, webp or gif)"
// @Success 200 {object} service.MailItemResponse "Mail item with photo attached"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Failure 404 {object} map[string]interface{} "Mail item not found"
// @Failure 413 {object} map[string]interface{} "Optimized photo exceeds the size limit"
// @Failure 415 {object} map[string]interface{} "Unsupported image type"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items/{id}/photo [post]
func (h *MailItemHandler) UploadMailItemPhoto(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mail item ID: invalid UUID format"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open upload", "details": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload", "details": err.Error()})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	photo, err := imaging.Optimize(data, mimeType, h.photoOptions)
	if err != nil {
		var unsupported *imaging.UnsupportedTypeError
		var tooLarge *imaging.TooLargeError
		switch {
		case errors.As(err, &unsupported):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to process photo", "details": err.Error()})
		}
		return
	}

	item, err := h.service.AttachPhoto(orgID, id, photo)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach photo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteMailItem handles DELETE /api/v1/mail-items/:id
// @Summary Delete a mail item
// @Tags mail-items
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Mail item ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid mail item ID"
// @Failure 404 {object} map[string]interface{} "Mail item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail-items/{id} [delete]
func (h *MailItemHandler) DeleteMailItem(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mail item ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mail item", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
