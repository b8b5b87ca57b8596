package handlers

import (
	"net/http"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StorageLocationHandler handles HTTP requests for storage locations
type StorageLocationHandler struct {
	service service.StorageLocationServiceInterface
}

// NewStorageLocationHandler creates a new storage location handler
func NewStorageLocationHandler(service service.StorageLocationServiceInterface) *StorageLocationHandler {
	return &StorageLocationHandler{service: service}
}

// CreateStorageLocation handles POST /api/v1/storage-locations
// @Summary Create a storage location
// @Tags storage-locations
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param location body service.CreateStorageLocationRequest true "Storage location data"
// @Success 201 {object} service.StorageLocationResponse "Successfully created storage location"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-locations [post]
func (h *StorageLocationHandler) CreateStorageLocation(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	var req service.CreateStorageLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	location, err := h.service.Create(orgID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create storage location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}

// ListStorageLocations handles GET /api/v1/storage-locations
// @Summary List the organization's storage locations
// @Tags storage-locations
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Success 200 {array} service.StorageLocationResponse "Storage locations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-locations [get]
func (h *StorageLocationHandler) ListStorageLocations(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	locations, err := h.service.List(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list storage locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// UpdateStorageLocation handles PUT /api/v1/storage-locations/:id
// @Summary Update a storage location
// @Tags storage-locations
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Storage location ID (UUID)"
// @Param location body service.UpdateStorageLocationRequest true "Fields to update"
// @Success 200 {object} service.StorageLocationResponse "Updated storage location"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Storage location not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-locations/{id} [put]
func (h *StorageLocationHandler) UpdateStorageLocation(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid storage location ID: invalid UUID format"})
		return
	}

	var req service.UpdateStorageLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	location, err := h.service.Update(orgID, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update storage location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteStorageLocation handles DELETE /api/v1/storage-locations/:id
// @Summary Delete a storage location
// @Tags storage-locations
// @Produce json
// @Param X-Organization-Id header string true "Organization ID (UUID)"
// @Param id path string true "Storage location ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid storage location ID"
// @Failure 404 {object} map[string]interface{} "Storage location not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-locations/{id} [delete]
func (h *StorageLocationHandler) DeleteStorageLocation(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context is required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid storage location ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete storage location", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
