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

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo           repository.OrganizationRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:           repo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" validate:"required,max=200"`
	PlanType    string `json:"plan_type,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=200"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	DisplayName        string    `json:"display_name"`
	PlanType           string    `json:"plan_type"`
	SubscriptionStatus string    `json:"subscription_status"`
	MaxUsers           int       `json:"max_users"`
	MaxPackagesMonthly int       `json:"max_packages_per_month"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// OrganizationMembershipResponse is one entry of the caller's organization list
type OrganizationMembershipResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Role         string               `json:"role"`
}

// Create creates a new organization and makes the creating user its admin
func (s *OrganizationService) Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan := models.PlanTypeTrial
	if req.PlanType != "" {
		plan = models.PlanType(req.PlanType)
		if !plan.IsValid() {
			return nil, apperrors.ErrInvalidPlanType
		}
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	maxUsers, maxPackages := models.PlanLimits(plan)
	org := &models.Organization{
		Name:               req.Name,
		DisplayName:        req.DisplayName,
		PlanType:           plan,
		SubscriptionStatus: models.SubscriptionStatusTrialing,
		MaxUsers:           maxUsers,
		MaxPackagesMonthly: maxPackages,
	}

	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	membership := &models.Membership{
		UserID:         userID,
		OrganizationID: org.ID,
		Role:           models.MembershipRoleAdmin,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create admin membership: %w", err)
	}

	return s.toResponse(org), nil
}

// ListForUser retrieves the organizations the user belongs to, with their role
func (s *OrganizationService) ListForUser(userID uuid.UUID) ([]OrganizationMembershipResponse, error) {
	memberships, err := s.membershipRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]OrganizationMembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		responses = append(responses, OrganizationMembershipResponse{
			Organization: *s.toResponse(&m.Organization),
			Role:         string(m.Role),
		})
	}
	return responses, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// Update updates an organization's settings
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.DisplayName = req.DisplayName
	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:                 org.ID,
		Name:               org.Name,
		DisplayName:        org.DisplayName,
		PlanType:           string(org.PlanType),
		SubscriptionStatus: string(org.SubscriptionStatus),
		MaxUsers:           org.MaxUsers,
		MaxPackagesMonthly: org.MaxPackagesMonthly,
		CreatedAt:          org.CreatedAt,
		UpdatedAt:          org.UpdatedAt,
	}
}
