package testutils

import (
	"encoding/json"
	"time"

	"mailroom-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:               "test-org-" + id.String()[:8],
		DisplayName:        "Test Organization",
		PlanType:           models.PlanTypeTrial,
		SubscriptionStatus: models.SubscriptionStatusTrialing,
		MaxUsers:           3,
		MaxPackagesMonthly: 50,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name
	return org
}

// WithPlan sets a plan and its default limits
func (f *OrganizationFactory) WithPlan(plan models.PlanType) *models.Organization {
	org := f.Create()
	org.PlanType = plan
	org.SubscriptionStatus = models.SubscriptionStatusActive
	org.MaxUsers, org.MaxPackagesMonthly = models.PlanLimits(plan)
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email per user to satisfy the unique index
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName:    "Jane",
		LastName:     "Doe",
		IsActive:     true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create() *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Role:           models.MembershipRoleMember,
	}
}

// Link creates a membership linking the given user and organization
func (f *MembershipFactory) Link(userID, orgID uuid.UUID, role models.MembershipRole) *models.Membership {
	membership := f.Create()
	membership.UserID = userID
	membership.OrganizationID = orgID
	membership.Role = role
	return membership
}

// RecipientFactory provides methods to create test Recipient data
type RecipientFactory struct{}

// NewRecipientFactory creates a new RecipientFactory
func NewRecipientFactory() *RecipientFactory {
	return &RecipientFactory{}
}

// Create creates a test Recipient with default values
func (f *RecipientFactory) Create() *models.Recipient {
	email := "recipient@test.com"
	unit := "4B"
	return &models.Recipient{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		FirstName:      "Robin",
		LastName:       "Tenant",
		Email:          &email,
		Unit:           &unit,
		Type:           models.RecipientTypeEmployee,
		IsActive:       true,
	}
}

// WithOrganization sets the organization ID for the recipient
func (f *RecipientFactory) WithOrganization(orgID uuid.UUID) *models.Recipient {
	recipient := f.Create()
	recipient.OrganizationID = orgID
	return recipient
}

// WithType sets a custom type for the recipient
func (f *RecipientFactory) WithType(recipientType models.RecipientType) *models.Recipient {
	recipient := f.Create()
	recipient.Type = recipientType
	return recipient
}

// Inactive creates a deactivated recipient
func (f *RecipientFactory) Inactive(orgID uuid.UUID) *models.Recipient {
	recipient := f.WithOrganization(orgID)
	recipient.IsActive = false
	return recipient
}

// StorageLocationFactory provides methods to create test StorageLocation data
type StorageLocationFactory struct{}

// NewStorageLocationFactory creates a new StorageLocationFactory
func NewStorageLocationFactory() *StorageLocationFactory {
	return &StorageLocationFactory{}
}

// Create creates a test StorageLocation with default values
func (f *StorageLocationFactory) Create() *models.StorageLocation {
	return &models.StorageLocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Shelf A",
		Description:    "Front desk shelf",
		IsActive:       true,
	}
}

// WithOrganization sets the organization ID for the storage location
func (f *StorageLocationFactory) WithOrganization(orgID uuid.UUID) *models.StorageLocation {
	location := f.Create()
	location.OrganizationID = orgID
	return location
}

// WithName sets a custom name for the storage location
func (f *StorageLocationFactory) WithName(name string) *models.StorageLocation {
	location := f.Create()
	location.Name = name
	return location
}

// MailItemFactory provides methods to create test MailItem data
type MailItemFactory struct{}

// NewMailItemFactory creates a new MailItemFactory
func NewMailItemFactory() *MailItemFactory {
	return &MailItemFactory{}
}

// Create creates a test MailItem with default values
func (f *MailItemFactory) Create() *models.MailItem {
	tracking := "1Z999AA10123456784"
	sender := "Acme Corp"
	return &models.MailItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Type:           models.MailItemTypePackage,
		Status:         models.MailItemStatusPending,
		TrackingNumber: &tracking,
		Sender:         &sender,
		ArrivedAt:      time.Now(),
	}
}

// WithOrganization sets the organization ID for the mail item
func (f *MailItemFactory) WithOrganization(orgID uuid.UUID) *models.MailItem {
	item := f.Create()
	item.OrganizationID = orgID
	return item
}

// WithRecipient sets the recipient ID for the mail item
func (f *MailItemFactory) WithRecipient(recipientID uuid.UUID) *models.MailItem {
	item := f.Create()
	item.RecipientID = &recipientID
	return item
}

// WithStatus sets a status with the matching timestamps filled in
func (f *MailItemFactory) WithStatus(status models.MailItemStatus) *models.MailItem {
	item := f.Create()
	item.Status = status
	now := time.Now()
	switch status {
	case models.MailItemStatusNotified:
		item.NotifiedAt = &now
	case models.MailItemStatusDelivered:
		item.NotifiedAt = &now
		item.DeliveredAt = &now
	}
	return item
}

// WithType sets a custom type for the mail item
func (f *MailItemFactory) WithType(itemType models.MailItemType) *models.MailItem {
	item := f.Create()
	item.Type = itemType
	return item
}

// IntegrationFactory provides methods to create test Integration data
type IntegrationFactory struct{}

// NewIntegrationFactory creates a new IntegrationFactory
func NewIntegrationFactory() *IntegrationFactory {
	return &IntegrationFactory{}
}

// Create creates a test webhook Integration with default values
func (f *IntegrationFactory) Create() *models.Integration {
	config, _ := json.Marshal(models.WebhookConfig{URL: "https://hooks.test.com/mailroom"})
	return &models.Integration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Type:           models.IntegrationTypeWebhook,
		Name:           "Test Webhook",
		Config:         config,
		IsActive:       true,
	}
}

// WithOrganization sets the organization ID for the integration
func (f *IntegrationFactory) WithOrganization(orgID uuid.UUID) *models.Integration {
	integration := f.Create()
	integration.OrganizationID = orgID
	return integration
}

// WithType sets a custom type for the integration
func (f *IntegrationFactory) WithType(integrationType models.IntegrationType) *models.Integration {
	integration := f.Create()
	integration.Type = integrationType
	integration.Name = "Test " + string(integrationType)
	return integration
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization    *OrganizationFactory
	User            *UserFactory
	Membership      *MembershipFactory
	Recipient       *RecipientFactory
	StorageLocation *StorageLocationFactory
	MailItem        *MailItemFactory
	Integration     *IntegrationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:    NewOrganizationFactory(),
		User:            NewUserFactory(),
		Membership:      NewMembershipFactory(),
		Recipient:       NewRecipientFactory(),
		StorageLocation: NewStorageLocationFactory(),
		MailItem:        NewMailItemFactory(),
		Integration:     NewIntegrationFactory(),
	}
}

// CreateTenant creates an organization with an admin user, a recipient and a
// storage location wired together, the common starting point for mailroom tests.
func (fs *FactorySet) CreateTenant() (*models.Organization, *models.User, *models.Membership, *models.Recipient, *models.StorageLocation) {
	org := fs.Organization.Create()
	user := fs.User.Create()
	membership := fs.Membership.Link(user.ID, org.ID, models.MembershipRoleAdmin)
	recipient := fs.Recipient.WithOrganization(org.ID)
	location := fs.StorageLocation.WithOrganization(org.ID)
	return org, user, membership, recipient, location
}
