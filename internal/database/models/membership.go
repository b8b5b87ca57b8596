package models

import "github.com/google/uuid"

// Membership links a user to an organization with a role.
type Membership struct {
	BaseModel
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_org" validate:"required"`
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_org;index" validate:"required"`
	Role           MembershipRole `json:"role" gorm:"type:varchar(50);not null;default:'member'" validate:"required"`

	// Relationships
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
