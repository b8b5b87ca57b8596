package models

// Organization represents the root entity for multi-tenancy.
// Every data-bearing row (mail item, recipient, integration) belongs to
// exactly one organization. Organizations are never hard-deleted here;
// billing webhooks and admin settings update them in place.
type Organization struct {
	BaseModel
	Name               string             `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName        string             `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	PlanType           PlanType           `json:"plan_type" gorm:"type:varchar(50);not null;default:'trial'"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status" gorm:"type:varchar(50);not null;default:'trialing'"`
	BillingCustomerID  string             `json:"billing_customer_id,omitempty" gorm:"size:100;index"`
	BillingSubID       string             `json:"billing_subscription_id,omitempty" gorm:"size:100"`
	MaxUsers           int                `json:"max_users" gorm:"not null;default:3"`
	MaxPackagesMonthly int                `json:"max_packages_per_month" gorm:"not null;default:100"`

	// Relationships
	Memberships      []Membership      `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Recipients       []Recipient       `json:"recipients,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	MailItems        []MailItem        `json:"mail_items,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Integrations     []Integration     `json:"integrations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	StorageLocations []StorageLocation `json:"storage_locations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// PlanLimits returns the default usage limits for a plan.
func PlanLimits(plan PlanType) (maxUsers, maxPackagesMonthly int) {
	switch plan {
	case PlanTypeStarter:
		return 3, 100
	case PlanTypeProfessional:
		return 10, 1000
	case PlanTypeEnterprise:
		return 100, 100000
	default: // trial
		return 3, 50
	}
}
