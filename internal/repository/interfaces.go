package repository

import (
	"time"

	"mailroom-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByBillingCustomerID(customerID string) (*models.Organization, error)
	Update(org *models.Organization) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByResetToken(token string) (*models.User, error)
	Update(user *models.User) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByUserID(userID uuid.UUID) ([]models.Membership, error)
	GetByUserAndOrganization(userID, orgID uuid.UUID) (*models.Membership, error)
	CountByOrganizationID(orgID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// RecipientRepositoryInterface defines the interface for recipient repository operations
type RecipientRepositoryInterface interface {
	Create(recipient *models.Recipient) error
	GetByID(orgID, id uuid.UUID) (*models.Recipient, error)
	GetByOrganizationID(orgID uuid.UUID, activeOnly bool, limit, offset int) ([]models.Recipient, int64, error)
	Update(recipient *models.Recipient) error
	Delete(orgID, id uuid.UUID) error
}

// MailItemFilter narrows mail item listing
type MailItemFilter struct {
	Status      models.MailItemStatus
	Type        models.MailItemType
	RecipientID *uuid.UUID
}

// MailItemRepositoryInterface defines the interface for mail item repository operations
type MailItemRepositoryInterface interface {
	Create(item *models.MailItem) error
	GetByID(orgID, id uuid.UUID) (*models.MailItem, error)
	GetByOrganizationID(orgID uuid.UUID, filter MailItemFilter, limit, offset int) ([]models.MailItem, int64, error)
	Update(item *models.MailItem) error
	Delete(orgID, id uuid.UUID) error
	CountSince(orgID uuid.UUID, since time.Time) (int64, error)
	GetStats(orgID uuid.UUID, now time.Time) (*MailItemStats, error)
	GetRecentActivity(orgID uuid.UUID, limit int) ([]models.MailItem, error)
}

// IntegrationRepositoryInterface defines the interface for integration repository operations
type IntegrationRepositoryInterface interface {
	Create(integration *models.Integration) error
	GetByID(orgID, id uuid.UUID) (*models.Integration, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Integration, error)
	GetActiveByOrganizationID(orgID uuid.UUID) ([]models.Integration, error)
	GetByTypeAndOrganization(orgID uuid.UUID, integrationType models.IntegrationType) (*models.Integration, error)
	Update(integration *models.Integration) error
	Delete(orgID, id uuid.UUID) error
}

// StorageLocationRepositoryInterface defines the interface for storage location repository operations
type StorageLocationRepositoryInterface interface {
	Create(location *models.StorageLocation) error
	GetByID(orgID, id uuid.UUID) (*models.StorageLocation, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.StorageLocation, error)
	Update(location *models.StorageLocation) error
	Delete(orgID, id uuid.UUID) error
}
