package models

import "github.com/google/uuid"

// Recipient is a named mail/package addressee within an organization.
type Recipient struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName      string        `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string        `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email          *string       `json:"email,omitempty" gorm:"size:255"`
	Phone          *string       `json:"phone,omitempty" gorm:"size:30"`
	Unit           *string       `json:"unit,omitempty" gorm:"size:50"`
	Department     *string       `json:"department,omitempty" gorm:"size:100"`
	Type           RecipientType `json:"type" gorm:"type:varchar(50);not null;default:'employee'"`
	IsActive       bool          `json:"is_active" gorm:"default:true"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipient
func (Recipient) TableName() string {
	return "recipients"
}
