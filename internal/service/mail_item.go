package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier dispatches pickup notifications for a mail item over the
// organization's active integrations. Implementations must not block the
// caller; dispatch failures are logged, never surfaced to the transition.
type Notifier interface {
	NotifyPickup(orgID uuid.UUID, item *models.MailItem)
}

// MailItemService handles intake and lifecycle transitions for mail items
type MailItemService struct {
	repo          repository.MailItemRepositoryInterface
	orgRepo       repository.OrganizationRepositoryInterface
	recipientRepo repository.RecipientRepositoryInterface
	locationRepo  repository.StorageLocationRepositoryInterface
	notifier      Notifier
	validator     *validator.Validate
}

// NewMailItemService creates a new mail item service. notifier may be nil,
// in which case notify transitions skip dispatch.
func NewMailItemService(
	repo repository.MailItemRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	recipientRepo repository.RecipientRepositoryInterface,
	locationRepo repository.StorageLocationRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *MailItemService {
	return &MailItemService{
		repo:          repo,
		orgRepo:       orgRepo,
		recipientRepo: recipientRepo,
		locationRepo:  locationRepo,
		notifier:      notifier,
		validator:     validator,
	}
}

// CreateMailItemRequest represents the intake form for a mail item.
// The organization id is never user-supplied; it comes from the tenant header.
type CreateMailItemRequest struct {
	Type              string     `json:"type" validate:"required"`
	RecipientID       *uuid.UUID `json:"recipient_id,omitempty"`
	StorageLocationID *uuid.UUID `json:"storage_location_id,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty" validate:"omitempty,max=100"`
	Sender            string     `json:"sender,omitempty" validate:"omitempty,max=200"`
	Description       string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Photo             string     `json:"photo,omitempty"`
	ArrivedAt         *time.Time `json:"arrived_at,omitempty"`
}

// UpdateMailItemRequest updates the descriptive fields of a mail item.
// Status is never writable here; it only moves through Notify and Deliver.
type UpdateMailItemRequest struct {
	RecipientID       *uuid.UUID `json:"recipient_id,omitempty"`
	StorageLocationID *uuid.UUID `json:"storage_location_id,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty" validate:"omitempty,max=100"`
	Sender            string     `json:"sender,omitempty" validate:"omitempty,max=200"`
	Description       string     `json:"description,omitempty" validate:"omitempty,max=500"`
}

// MailItemResponse represents the response for mail item operations
type MailItemResponse struct {
	ID                uuid.UUID  `json:"id"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	TrackingNumber    *string    `json:"tracking_number,omitempty"`
	Sender            *string    `json:"sender,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Photo             *string    `json:"photo,omitempty"`
	RecipientID       *uuid.UUID `json:"recipient_id,omitempty"`
	StorageLocationID *uuid.UUID `json:"storage_location_id,omitempty"`
	ArrivedAt         time.Time  `json:"arrived_at"`
	NotifiedAt        *time.Time `json:"notified_at,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// MailItemListResponse represents a paginated list of mail items
type MailItemListResponse struct {
	Items    []MailItemResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// normalizeOptional maps empty or whitespace-only strings to nil so that
// "no value" is stored as NULL rather than "".
func normalizeOptional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Create logs a new mail item at intake. Status always starts at pending;
// the monthly plan limit is enforced against the current month's intake count.
func (s *MailItemService) Create(orgID uuid.UUID, req *CreateMailItemRequest) (*MailItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	itemType := models.MailItemType(req.Type)
	if !itemType.IsValid() {
		return nil, apperrors.ErrInvalidMailItemType
	}

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	monthStart := monthStartOf(time.Now())
	count, err := s.repo.CountSince(orgID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count monthly intake: %w", err)
	}
	if org.MaxPackagesMonthly > 0 && count >= int64(org.MaxPackagesMonthly) {
		return nil, apperrors.NewUsageLimitError("packages per month", org.MaxPackagesMonthly)
	}

	// References must belong to the same organization.
	if req.RecipientID != nil {
		if _, err := s.recipientRepo.GetByID(orgID, *req.RecipientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecipientNotFound
			}
			return nil, fmt.Errorf("failed to get recipient: %w", err)
		}
	}
	if req.StorageLocationID != nil {
		if _, err := s.locationRepo.GetByID(orgID, *req.StorageLocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStorageLocationNotFound
			}
			return nil, fmt.Errorf("failed to get storage location: %w", err)
		}
	}

	arrivedAt := time.Now()
	if req.ArrivedAt != nil {
		arrivedAt = *req.ArrivedAt
	}

	item := &models.MailItem{
		OrganizationID:    orgID,
		RecipientID:       req.RecipientID,
		StorageLocationID: req.StorageLocationID,
		Type:              itemType,
		Status:            models.MailItemStatusPending,
		TrackingNumber:    normalizeOptional(req.TrackingNumber),
		Sender:            normalizeOptional(req.Sender),
		Description:       normalizeOptional(req.Description),
		Photo:             normalizeOptional(req.Photo),
		ArrivedAt:         arrivedAt,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create mail item: %w", err)
	}

	return s.toResponse(item), nil
}

// GetByID retrieves a mail item by ID within the organization
func (s *MailItemService) GetByID(orgID, id uuid.UUID) (*MailItemResponse, error) {
	item, err := s.getItem(orgID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(item), nil
}

// List retrieves the organization's mail items with filters and pagination
func (s *MailItemService) List(orgID uuid.UUID, filter repository.MailItemFilter, page, pageSize int) (*MailItemListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	items, total, err := s.repo.GetByOrganizationID(orgID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list mail items: %w", err)
	}

	responses := make([]MailItemResponse, len(items))
	for i, item := range items {
		responses[i] = *s.toResponse(&item)
	}

	return &MailItemListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates the descriptive fields of a mail item
func (s *MailItemService) Update(orgID, id uuid.UUID, req *UpdateMailItemRequest) (*MailItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.getItem(orgID, id)
	if err != nil {
		return nil, err
	}

	if req.RecipientID != nil {
		if _, err := s.recipientRepo.GetByID(orgID, *req.RecipientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecipientNotFound
			}
			return nil, fmt.Errorf("failed to get recipient: %w", err)
		}
		item.RecipientID = req.RecipientID
	}
	if req.StorageLocationID != nil {
		if _, err := s.locationRepo.GetByID(orgID, *req.StorageLocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStorageLocationNotFound
			}
			return nil, fmt.Errorf("failed to get storage location: %w", err)
		}
		item.StorageLocationID = req.StorageLocationID
	}

	item.TrackingNumber = normalizeOptional(req.TrackingNumber)
	item.Sender = normalizeOptional(req.Sender)
	item.Description = normalizeOptional(req.Description)

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update mail item: %w", err)
	}

	return s.toResponse(item), nil
}

// Notify transitions a mail item to notified and dispatches pickup
// notifications. Calling it again on an already-notified item is a no-op.
func (s *MailItemService) Notify(orgID, id uuid.UUID) (*MailItemResponse, error) {
	item, err := s.getItem(orgID, id)
	if err != nil {
		return nil, err
	}

	next, changed, err := models.Transition(item.Status, models.ActionNotify)
	if err != nil {
		return nil, err
	}
	if !changed {
		return s.toResponse(item), nil
	}

	now := time.Now()
	item.Status = next
	item.NotifiedAt = &now
	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update mail item: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyPickup(orgID, item)
	}

	return s.toResponse(item), nil
}

// Deliver transitions a mail item to delivered, from either pending or
// notified. Calling it again on a delivered item is a no-op.
func (s *MailItemService) Deliver(orgID, id uuid.UUID) (*MailItemResponse, error) {
	item, err := s.getItem(orgID, id)
	if err != nil {
		return nil, err
	}

	next, changed, err := models.Transition(item.Status, models.ActionDeliver)
	if err != nil {
		return nil, err
	}
	if !changed {
		return s.toResponse(item), nil
	}

	now := time.Now()
	item.Status = next
	item.DeliveredAt = &now
	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update mail item: %w", err)
	}

	return s.toResponse(item), nil
}

// AttachPhoto stores an already-optimized photo on a mail item, replacing
// any previous one
func (s *MailItemService) AttachPhoto(orgID, id uuid.UUID, photo string) (*MailItemResponse, error) {
	if photo == "" {
		return nil, apperrors.NewValidationError("photo", "photo data is required")
	}

	item, err := s.getItem(orgID, id)
	if err != nil {
		return nil, err
	}

	item.Photo = &photo
	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update mail item: %w", err)
	}

	return s.toResponse(item), nil
}

// Delete hard-deletes a mail item, permitted from any status
func (s *MailItemService) Delete(orgID, id uuid.UUID) error {
	if _, err := s.getItem(orgID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete mail item: %w", err)
	}
	return nil
}

func (s *MailItemService) getItem(orgID, id uuid.UUID) (*models.MailItem, error) {
	item, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMailItemNotFound
		}
		return nil, fmt.Errorf("failed to get mail item: %w", err)
	}
	return item, nil
}

func monthStartOf(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func (s *MailItemService) toResponse(item *models.MailItem) *MailItemResponse {
	return &MailItemResponse{
		ID:                item.ID,
		Type:              string(item.Type),
		Status:            string(item.Status),
		TrackingNumber:    item.TrackingNumber,
		Sender:            item.Sender,
		Description:       item.Description,
		Photo:             item.Photo,
		RecipientID:       item.RecipientID,
		StorageLocationID: item.StorageLocationID,
		ArrivedAt:         item.ArrivedAt,
		NotifiedAt:        item.NotifiedAt,
		DeliveredAt:       item.DeliveredAt,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}
