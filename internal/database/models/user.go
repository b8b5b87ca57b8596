package models

import "time"

// User is an authenticated staff account. A user may belong to multiple
// organizations through Membership rows; the "active" organization is
// client-side selected state, never stored here.
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	FirstName    string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	ResetToken   string     `json:"-" gorm:"size:100;index"`
	ResetExpiry  *time.Time `json:"-"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
