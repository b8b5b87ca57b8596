package repository

import (
	"mailroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntegrationRepository handles database operations for integrations
type IntegrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository creates a new integration repository
func NewIntegrationRepository(db *gorm.DB) *IntegrationRepository {
	return &IntegrationRepository{db: db}
}

// Create creates a new integration
func (r *IntegrationRepository) Create(integration *models.Integration) error {
	return r.db.Create(integration).Error
}

// GetByID retrieves an integration by ID within an organization
func (r *IntegrationRepository) GetByID(orgID, id uuid.UUID) (*models.Integration, error) {
	var integration models.Integration
	err := r.db.First(&integration, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &integration, nil
}

// GetByOrganizationID retrieves all integrations of an organization
func (r *IntegrationRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Integration, error) {
	var integrations []models.Integration
	err := r.db.Where("organization_id = ?", orgID).Order("created_at ASC").Find(&integrations).Error
	if err != nil {
		return nil, err
	}
	return integrations, nil
}

// GetActiveByOrganizationID retrieves the active integrations of an organization
func (r *IntegrationRepository) GetActiveByOrganizationID(orgID uuid.UUID) ([]models.Integration, error) {
	var integrations []models.Integration
	err := r.db.Where("organization_id = ? AND is_active = ?", orgID, true).Find(&integrations).Error
	if err != nil {
		return nil, err
	}
	return integrations, nil
}

// GetByTypeAndOrganization retrieves the integration of a given channel type
func (r *IntegrationRepository) GetByTypeAndOrganization(orgID uuid.UUID, integrationType models.IntegrationType) (*models.Integration, error) {
	var integration models.Integration
	err := r.db.First(&integration, "organization_id = ? AND type = ?", orgID, integrationType).Error
	if err != nil {
		return nil, err
	}
	return &integration, nil
}

// Update updates an integration
func (r *IntegrationRepository) Update(integration *models.Integration) error {
	return r.db.Save(integration).Error
}

// Delete deletes an integration within an organization
func (r *IntegrationRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.Integration{}, "organization_id = ? AND id = ?", orgID, id).Error
}
