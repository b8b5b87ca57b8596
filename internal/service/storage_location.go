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

// StorageLocationService handles business logic for storage locations
type StorageLocationService struct {
	repo      repository.StorageLocationRepositoryInterface
	validator *validator.Validate
}

// NewStorageLocationService creates a new storage location service
func NewStorageLocationService(repo repository.StorageLocationRepositoryInterface, validator *validator.Validate) *StorageLocationService {
	return &StorageLocationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateStorageLocationRequest represents the request to create a storage location
type CreateStorageLocationRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=200"`
}

// UpdateStorageLocationRequest represents the request to update a storage location
type UpdateStorageLocationRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=200"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// StorageLocationResponse represents the response for storage location operations
type StorageLocationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Create creates a new storage location in the organization
func (s *StorageLocationService) Create(orgID uuid.UUID, req *CreateStorageLocationRequest) (*StorageLocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	location := &models.StorageLocation{
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		IsActive:       true,
	}

	if err := s.repo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create storage location: %w", err)
	}

	return s.toResponse(location), nil
}

// List retrieves the organization's storage locations
func (s *StorageLocationService) List(orgID uuid.UUID) ([]StorageLocationResponse, error) {
	locations, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage locations: %w", err)
	}

	responses := make([]StorageLocationResponse, len(locations))
	for i, l := range locations {
		responses[i] = *s.toResponse(&l)
	}
	return responses, nil
}

// Update updates a storage location
func (s *StorageLocationService) Update(orgID, id uuid.UUID, req *UpdateStorageLocationRequest) (*StorageLocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	location, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStorageLocationNotFound
		}
		return nil, fmt.Errorf("failed to get storage location: %w", err)
	}

	location.Name = req.Name
	location.Description = req.Description
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}

	if err := s.repo.Update(location); err != nil {
		return nil, fmt.Errorf("failed to update storage location: %w", err)
	}

	return s.toResponse(location), nil
}

// Delete deletes a storage location within the organization
func (s *StorageLocationService) Delete(orgID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStorageLocationNotFound
		}
		return fmt.Errorf("failed to get storage location: %w", err)
	}

	if err := s.repo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete storage location: %w", err)
	}
	return nil
}

func (s *StorageLocationService) toResponse(l *models.StorageLocation) *StorageLocationResponse {
	return &StorageLocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
