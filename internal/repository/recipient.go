package repository

import (
	"mailroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipientRepository handles database operations for recipients.
// Every query is scoped by organization id; cross-tenant access is forbidden.
type RecipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(db *gorm.DB) *RecipientRepository {
	return &RecipientRepository{db: db}
}

// Create creates a new recipient
func (r *RecipientRepository) Create(recipient *models.Recipient) error {
	return r.db.Create(recipient).Error
}

// GetByID retrieves a recipient by ID within an organization
func (r *RecipientRepository) GetByID(orgID, id uuid.UUID) (*models.Recipient, error) {
	var recipient models.Recipient
	err := r.db.First(&recipient, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &recipient, nil
}

// GetByOrganizationID retrieves recipients of an organization with pagination
func (r *RecipientRepository) GetByOrganizationID(orgID uuid.UUID, activeOnly bool, limit, offset int) ([]models.Recipient, int64, error) {
	var recipients []models.Recipient
	var total int64

	query := r.db.Model(&models.Recipient{}).Where("organization_id = ?", orgID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_name ASC, first_name ASC").
		Limit(limit).Offset(offset).
		Find(&recipients).Error
	if err != nil {
		return nil, 0, err
	}

	return recipients, total, nil
}

// Update updates a recipient
func (r *RecipientRepository) Update(recipient *models.Recipient) error {
	return r.db.Save(recipient).Error
}

// Delete deletes a recipient within an organization
func (r *RecipientRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.Recipient{}, "organization_id = ? AND id = ?", orgID, id).Error
}
