package service

import (
	"encoding/json"
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

// IntegrationService handles business logic for notification integrations
type IntegrationService struct {
	repo      repository.IntegrationRepositoryInterface
	validator *validator.Validate
}

// NewIntegrationService creates a new integration service
func NewIntegrationService(repo repository.IntegrationRepositoryInterface, validator *validator.Validate) *IntegrationService {
	return &IntegrationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateIntegrationRequest represents the request to create an integration
type CreateIntegrationRequest struct {
	Type   string          `json:"type" validate:"required"`
	Name   string          `json:"name" validate:"required,max=100"`
	Config json.RawMessage `json:"config"`
}

// UpdateIntegrationRequest represents the request to update an integration
type UpdateIntegrationRequest struct {
	Name   string          `json:"name" validate:"required,max=100"`
	Config json.RawMessage `json:"config"`
}

// IntegrationResponse represents the response for integration operations
type IntegrationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Create creates a new integration. One integration per channel type is
// allowed in an organization.
func (s *IntegrationService) Create(orgID uuid.UUID, req *CreateIntegrationRequest) (*IntegrationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	integrationType := models.IntegrationType(req.Type)
	if !integrationType.IsValid() {
		return nil, apperrors.ErrInvalidIntegrationType
	}

	existing, err := s.repo.GetByTypeAndOrganization(orgID, integrationType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing integration: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrIntegrationExists
	}

	integration := &models.Integration{
		OrganizationID: orgID,
		Type:           integrationType,
		Name:           req.Name,
		Config:         req.Config,
		IsActive:       true,
	}

	if err := s.repo.Create(integration); err != nil {
		return nil, fmt.Errorf("failed to create integration: %w", err)
	}

	return s.toResponse(integration), nil
}

// GetByID retrieves an integration by ID within the organization
func (s *IntegrationService) GetByID(orgID, id uuid.UUID) (*IntegrationResponse, error) {
	integration, err := s.getIntegration(orgID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(integration), nil
}

// List retrieves the organization's integrations
func (s *IntegrationService) List(orgID uuid.UUID) ([]IntegrationResponse, error) {
	integrations, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}

	responses := make([]IntegrationResponse, len(integrations))
	for i, integration := range integrations {
		responses[i] = *s.toResponse(&integration)
	}
	return responses, nil
}

// Update updates an integration's name and config
func (s *IntegrationService) Update(orgID, id uuid.UUID, req *UpdateIntegrationRequest) (*IntegrationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	integration, err := s.getIntegration(orgID, id)
	if err != nil {
		return nil, err
	}

	integration.Name = req.Name
	integration.Config = req.Config

	if err := s.repo.Update(integration); err != nil {
		return nil, fmt.Errorf("failed to update integration: %w", err)
	}

	return s.toResponse(integration), nil
}

// SetActive toggles an integration without touching its configuration
func (s *IntegrationService) SetActive(orgID, id uuid.UUID, active bool) (*IntegrationResponse, error) {
	integration, err := s.getIntegration(orgID, id)
	if err != nil {
		return nil, err
	}

	integration.IsActive = active
	if err := s.repo.Update(integration); err != nil {
		return nil, fmt.Errorf("failed to update integration: %w", err)
	}

	return s.toResponse(integration), nil
}

// Delete deletes an integration within the organization
func (s *IntegrationService) Delete(orgID, id uuid.UUID) error {
	if _, err := s.getIntegration(orgID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete integration: %w", err)
	}
	return nil
}

func (s *IntegrationService) getIntegration(orgID, id uuid.UUID) (*models.Integration, error) {
	integration, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("failed to get integration: %w", err)
	}
	return integration, nil
}

func (s *IntegrationService) toResponse(i *models.Integration) *IntegrationResponse {
	return &IntegrationResponse{
		ID:        i.ID,
		Type:      string(i.Type),
		Name:      i.Name,
		Config:    i.Config,
		IsActive:  i.IsActive,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
