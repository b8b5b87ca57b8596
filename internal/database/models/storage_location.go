package models

import "github.com/google/uuid"

// StorageLocation is a named shelf/bin where held mail items wait for pickup.
type StorageLocation struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description    string    `json:"description" gorm:"size:200" validate:"max=200"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StorageLocation
func (StorageLocation) TableName() string {
	return "storage_locations"
}
