package repository

import (
	"mailroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for user-organization memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByUserID retrieves all memberships for a user with their organizations preloaded.
// Ordered by creation time so the "first organization" a client falls back to is stable.
func (r *MembershipRepository) GetByUserID(userID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("Organization").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetByUserAndOrganization retrieves the membership linking a user to an organization
func (r *MembershipRepository) GetByUserAndOrganization(userID, orgID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND organization_id = ?", userID, orgID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// CountByOrganizationID counts the members of an organization
func (r *MembershipRepository) CountByOrganizationID(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// Delete deletes a membership
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Membership{}, "id = ?", id).Error
}
