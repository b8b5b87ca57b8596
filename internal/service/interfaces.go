package service

import (
	"mailroom-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganizationMembershipResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
}

// MailItemServiceInterface defines the interface for mail item service
type MailItemServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateMailItemRequest) (*MailItemResponse, error)
	GetByID(orgID, id uuid.UUID) (*MailItemResponse, error)
	List(orgID uuid.UUID, filter repository.MailItemFilter, page, pageSize int) (*MailItemListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateMailItemRequest) (*MailItemResponse, error)
	Notify(orgID, id uuid.UUID) (*MailItemResponse, error)
	Deliver(orgID, id uuid.UUID) (*MailItemResponse, error)
	AttachPhoto(orgID, id uuid.UUID, photo string) (*MailItemResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// RecipientServiceInterface defines the interface for recipient service
type RecipientServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateRecipientRequest) (*RecipientResponse, error)
	GetByID(orgID, id uuid.UUID) (*RecipientResponse, error)
	List(orgID uuid.UUID, activeOnly bool, page, pageSize int) (*RecipientListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateRecipientRequest) (*RecipientResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// IntegrationServiceInterface defines the interface for integration service
type IntegrationServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateIntegrationRequest) (*IntegrationResponse, error)
	GetByID(orgID, id uuid.UUID) (*IntegrationResponse, error)
	List(orgID uuid.UUID) ([]IntegrationResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateIntegrationRequest) (*IntegrationResponse, error)
	SetActive(orgID, id uuid.UUID, active bool) (*IntegrationResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// StorageLocationServiceInterface defines the interface for storage location service
type StorageLocationServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateStorageLocationRequest) (*StorageLocationResponse, error)
	List(orgID uuid.UUID) ([]StorageLocationResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateStorageLocationRequest) (*StorageLocationResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	GetStats(orgID uuid.UUID) (*DashboardStatsResponse, error)
	GetRecentActivity(orgID uuid.UUID, limit int) ([]ActivityEntry, error)
}

// BillingServiceInterface defines the interface for billing service
type BillingServiceInterface interface {
	CreateCheckoutSession(orgID uuid.UUID, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error)
	CreatePortalSession(orgID uuid.UUID) (*PortalSessionResponse, error)
	HandleWebhook(payload []byte, signature string) error
}
