package repository

import (
	"mailroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageLocationRepository handles database operations for storage locations
type StorageLocationRepository struct {
	db *gorm.DB
}

// NewStorageLocationRepository creates a new storage location repository
func NewStorageLocationRepository(db *gorm.DB) *StorageLocationRepository {
	return &StorageLocationRepository{db: db}
}

// Create creates a new storage location
func (r *StorageLocationRepository) Create(location *models.StorageLocation) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a storage location by ID within an organization
func (r *StorageLocationRepository) GetByID(orgID, id uuid.UUID) (*models.StorageLocation, error) {
	var location models.StorageLocation
	err := r.db.First(&location, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByOrganizationID retrieves all storage locations of an organization
func (r *StorageLocationRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.StorageLocation, error) {
	var locations []models.StorageLocation
	err := r.db.Where("organization_id = ?", orgID).Order("name ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// Update updates a storage location
func (r *StorageLocationRepository) Update(location *models.StorageLocation) error {
	return r.db.Save(location).Error
}

// Delete deletes a storage location within an organization
func (r *StorageLocationRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.StorageLocation{}, "organization_id = ? AND id = ?", orgID, id).Error
}
