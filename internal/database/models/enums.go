package models

// PlanType defines the subscription plans an organization can be on
type PlanType string

const (
	PlanTypeTrial        PlanType = "trial"
	PlanTypeStarter      PlanType = "starter"
	PlanTypeProfessional PlanType = "professional"
	PlanTypeEnterprise   PlanType = "enterprise"
)

// SubscriptionStatus mirrors the billing provider's subscription state
type SubscriptionStatus string

const (
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// MembershipRole represents the role of a user in an organization
type MembershipRole string

const (
	MembershipRoleAdmin  MembershipRole = "admin"
	MembershipRoleMember MembershipRole = "member"
)

// RecipientType classifies who a recipient is within the organization
type RecipientType string

const (
	RecipientTypeGuest    RecipientType = "guest"
	RecipientTypeEmployee RecipientType = "employee"
	RecipientTypeResident RecipientType = "resident"
)

// MailItemType classifies a piece of incoming mail
type MailItemType string

const (
	MailItemTypePackage       MailItemType = "package"
	MailItemTypeLetter        MailItemType = "letter"
	MailItemTypeCertifiedMail MailItemType = "certified_mail"
	MailItemTypeExpress       MailItemType = "express"
)

// MailItemStatus is the forward-only pickup lifecycle of a mail item
type MailItemStatus string

const (
	MailItemStatusPending   MailItemStatus = "pending"
	MailItemStatusNotified  MailItemStatus = "notified"
	MailItemStatusDelivered MailItemStatus = "delivered"
)

// IntegrationType identifies the notification channel an integration configures
type IntegrationType string

const (
	IntegrationTypeEmail   IntegrationType = "email"
	IntegrationTypeSMS     IntegrationType = "sms"
	IntegrationTypeWebhook IntegrationType = "webhook"
	IntegrationTypeAPI     IntegrationType = "api"
)

// IsValid checks if the PlanType is valid
func (p PlanType) IsValid() bool {
	switch p {
	case PlanTypeTrial, PlanTypeStarter, PlanTypeProfessional, PlanTypeEnterprise:
		return true
	}
	return false
}

// IsValid checks if the SubscriptionStatus is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusTrialing, SubscriptionStatusActive, SubscriptionStatusPastDue, SubscriptionStatusCanceled:
		return true
	}
	return false
}

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleAdmin, MembershipRoleMember:
		return true
	}
	return false
}

// IsValid checks if the RecipientType is valid
func (r RecipientType) IsValid() bool {
	switch r {
	case RecipientTypeGuest, RecipientTypeEmployee, RecipientTypeResident:
		return true
	}
	return false
}

// IsValid checks if the MailItemType is valid
func (t MailItemType) IsValid() bool {
	switch t {
	case MailItemTypePackage, MailItemTypeLetter, MailItemTypeCertifiedMail, MailItemTypeExpress:
		return true
	}
	return false
}

// IsValid checks if the MailItemStatus is valid
func (s MailItemStatus) IsValid() bool {
	switch s {
	case MailItemStatusPending, MailItemStatusNotified, MailItemStatusDelivered:
		return true
	}
	return false
}

// IsValid checks if the IntegrationType is valid
func (t IntegrationType) IsValid() bool {
	switch t {
	case IntegrationTypeEmail, IntegrationTypeSMS, IntegrationTypeWebhook, IntegrationTypeAPI:
		return true
	}
	return false
}
