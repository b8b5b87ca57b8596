package service

import (
	"errors"
	"fmt"
	"time"

	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipientService handles business logic for recipients
type RecipientService struct {
	repo      repository.RecipientRepositoryInterface
	validator *validator.Validate
}

// NewRecipientService creates a new recipient service
func NewRecipientService(repo repository.RecipientRepositoryInterface, validator *validator.Validate) *RecipientService {
	return &RecipientService{
		repo:      repo,
		validator: validator,
	}
}

// CreateRecipientRequest represents the request to create a recipient
type CreateRecipientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Unit       string `json:"unit,omitempty" validate:"omitempty,max=50"`
	Department string `json:"department,omitempty" validate:"omitempty,max=100"`
	Type       string `json:"type,omitempty"`
}

// UpdateRecipientRequest represents the request to update a recipient
type UpdateRecipientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Unit       string `json:"unit,omitempty" validate:"omitempty,max=50"`
	Department string `json:"department,omitempty" validate:"omitempty,max=100"`
	Type       string `json:"type,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// RecipientResponse represents the response for recipient operations
type RecipientResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Unit       *string   `json:"unit,omitempty"`
	Department *string   `json:"department,omitempty"`
	Type       string    `json:"type"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecipientListResponse represents a paginated list of recipients
type RecipientListResponse struct {
	Recipients []RecipientResponse `json:"recipients"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new recipient in the organization
func (s *RecipientService) Create(orgID uuid.UUID, req *CreateRecipientRequest) (*RecipientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	recipientType := models.RecipientTypeEmployee
	if req.Type != "" {
		recipientType = models.RecipientType(req.Type)
		if !recipientType.IsValid() {
			return nil, apperrors.ErrInvalidRecipientType
		}
	}

	recipient := &models.Recipient{
		OrganizationID: orgID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          normalizeOptional(req.Email),
		Phone:          normalizeOptional(req.Phone),
		Unit:           normalizeOptional(req.Unit),
		Department:     normalizeOptional(req.Department),
		Type:           recipientType,
		IsActive:       true,
	}

	if err := s.repo.Create(recipient); err != nil {
		return nil, fmt.Errorf("failed to create recipient: %w", err)
	}

	return s.toResponse(recipient), nil
}

// GetByID retrieves a recipient by ID within the organization
func (s *RecipientService) GetByID(orgID, id uuid.UUID) (*RecipientResponse, error) {
	recipient, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	return s.toResponse(recipient), nil
}

// List retrieves the organization's recipients with pagination
func (s *RecipientService) List(orgID uuid.UUID, activeOnly bool, page, pageSize int) (*RecipientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	recipients, total, err := s.repo.GetByOrganizationID(orgID, activeOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}

	responses := make([]RecipientResponse, len(recipients))
	for i, r := range recipients {
		responses[i] = *s.toResponse(&r)
	}

	return &RecipientListResponse{
		Recipients: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a recipient
func (s *RecipientService) Update(orgID, id uuid.UUID, req *UpdateRecipientRequest) (*RecipientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	recipient, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	if req.Type != "" {
		recipientType := models.RecipientType(req.Type)
		if !recipientType.IsValid() {
			return nil, apperrors.ErrInvalidRecipientType
		}
		recipient.Type = recipientType
	}

	recipient.FirstName = req.FirstName
	recipient.LastName = req.LastName
	recipient.Email = normalizeOptional(req.Email)
	recipient.Phone = normalizeOptional(req.Phone)
	recipient.Unit = normalizeOptional(req.Unit)
	recipient.Department = normalizeOptional(req.Department)
	if req.IsActive != nil {
		recipient.IsActive = *req.IsActive
	}

	if err := s.repo.Update(recipient); err != nil {
		return nil, fmt.Errorf("failed to update recipient: %w", err)
	}

	return s.toResponse(recipient), nil
}

// Delete deletes a recipient within the organization
func (s *RecipientService) Delete(orgID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipientNotFound
		}
		return fmt.Errorf("failed to get recipient: %w", err)
	}

	if err := s.repo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete recipient: %w", err)
	}
	return nil
}

func (s *RecipientService) toResponse(r *models.Recipient) *RecipientResponse {
	return &RecipientResponse{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Unit:       r.Unit,
		Department: r.Department,
		Type:       string(r.Type),
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
