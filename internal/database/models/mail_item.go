package models

import (
	"time"

	"github.com/google/uuid"

	apperrors "mailroom-backend/internal/errors"
)

// MailItem represents a physical piece of mail or a package logged at intake.
// Status moves strictly forward: pending -> notified -> delivered. Deliver may
// skip the notified step; nothing moves backward.
type MailItem struct {
	BaseModel
	OrganizationID    uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	RecipientID       *uuid.UUID     `json:"recipient_id,omitempty" gorm:"type:uuid;index"`
	StorageLocationID *uuid.UUID     `json:"storage_location_id,omitempty" gorm:"type:uuid;index"`
	Type              MailItemType   `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Status            MailItemStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending';index"`
	TrackingNumber    *string        `json:"tracking_number,omitempty" gorm:"size:100"`
	Sender            *string        `json:"sender,omitempty" gorm:"size:200"`
	Description       *string        `json:"description,omitempty" gorm:"size:500"`
	Photo             *string        `json:"photo,omitempty" gorm:"type:text"`
	ArrivedAt         time.Time      `json:"arrived_at" gorm:"not null;index"`
	NotifiedAt        *time.Time     `json:"notified_at,omitempty"`
	DeliveredAt       *time.Time     `json:"delivered_at,omitempty"`

	// Relationships
	Organization    Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Recipient       *Recipient       `json:"recipient,omitempty" gorm:"foreignKey:RecipientID;constraint:OnDelete:SET NULL"`
	StorageLocation *StorageLocation `json:"storage_location,omitempty" gorm:"foreignKey:StorageLocationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for MailItem
func (MailItem) TableName() string {
	return "mail_items"
}

// LifecycleAction is a staff action that advances a mail item's status.
type LifecycleAction string

const (
	ActionNotify  LifecycleAction = "notify"
	ActionDeliver LifecycleAction = "deliver"
)

// Transition applies a lifecycle action to a status. It is the single place
// where the forward-only state machine is enforced; repositories and handlers
// never mutate Status directly. Re-applying an action whose target status is
// already current is an idempotent no-op (changed=false), so a double-tap on
// "notify" keeps the original notified timestamp. Any backward move returns
// an InvalidTransitionError.
func Transition(current MailItemStatus, action LifecycleAction) (next MailItemStatus, changed bool, err error) {
	switch action {
	case ActionNotify:
		switch current {
		case MailItemStatusPending:
			return MailItemStatusNotified, true, nil
		case MailItemStatusNotified:
			return MailItemStatusNotified, false, nil
		case MailItemStatusDelivered:
			return current, false, apperrors.NewInvalidTransitionError(string(current), string(MailItemStatusNotified))
		}
	case ActionDeliver:
		switch current {
		case MailItemStatusPending, MailItemStatusNotified:
			return MailItemStatusDelivered, true, nil
		case MailItemStatusDelivered:
			return MailItemStatusDelivered, false, nil
		}
	}
	return current, false, apperrors.NewInvalidTransitionError(string(current), string(action))
}
