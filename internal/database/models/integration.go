package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Integration is a per-organization external-notification configuration.
// One row per configured channel; toggling IsActive keeps the config payload.
type Integration struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type           IntegrationType `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Name           string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Config         json.RawMessage `json:"config" gorm:"type:jsonb"`
	IsActive       bool            `json:"is_active" gorm:"default:true"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Integration
func (Integration) TableName() string {
	return "integrations"
}

// WebhookConfig is the config payload for webhook integrations.
type WebhookConfig struct {
	URL    string `json:"url"`
	Secret string `json:"secret,omitempty"`
}

// EmailConfig is the config payload for email integrations.
type EmailConfig struct {
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
	From     string `json:"from"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// SMSConfig is the config payload for SMS gateway integrations.
type SMSConfig struct {
	GatewayURL string `json:"gateway_url"`
	APIKey     string `json:"api_key,omitempty"`
	Sender     string `json:"sender,omitempty"`
}
