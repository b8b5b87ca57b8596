package service_test

import (
	"testing"

	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/mocks"
	"mailroom-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockOrganizationRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	service            *service.OrganizationService
	userID             uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.service = service.NewOrganizationService(suite.mockRepo, suite.mockMembershipRepo, validator.New())
	suite.userID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating an organization with the creator as admin
func (suite *OrganizationServiceTestSuite) TestCreate() {
	req := &service.CreateOrganizationRequest{
		Name:        "acme-lobby",
		DisplayName: "Acme Lobby Mailroom",
	}

	suite.mockRepo.EXPECT().
		GetByName("acme-lobby").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			org.ID = uuid.New()
			assert.Equal(suite.T(), models.PlanTypeTrial, org.PlanType)
			assert.Equal(suite.T(), models.SubscriptionStatusTrialing, org.SubscriptionStatus)
			assert.Equal(suite.T(), 3, org.MaxUsers)
			assert.Equal(suite.T(), 50, org.MaxPackagesMonthly)
			return nil
		}).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(membership *models.Membership) error {
			assert.Equal(suite.T(), suite.userID, membership.UserID)
			assert.Equal(suite.T(), models.MembershipRoleAdmin, membership.Role)
			return nil
		}).
		Times(1)

	response, err := suite.service.Create(suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acme-lobby", response.Name)
	assert.Equal(suite.T(), "trial", response.PlanType)
}

// TestCreateWithPlan tests creating an organization on a named plan
func (suite *OrganizationServiceTestSuite) TestCreateWithPlan() {
	req := &service.CreateOrganizationRequest{
		Name:        "acme-lobby",
		DisplayName: "Acme Lobby Mailroom",
		PlanType:    "professional",
	}

	suite.mockRepo.EXPECT().
		GetByName("acme-lobby").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			assert.Equal(suite.T(), 10, org.MaxUsers)
			assert.Equal(suite.T(), 1000, org.MaxPackagesMonthly)
			return nil
		}).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.service.Create(suite.userID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "professional", response.PlanType)
}

// TestCreateInvalidPlan tests that an unknown plan type is rejected
func (suite *OrganizationServiceTestSuite) TestCreateInvalidPlan() {
	req := &service.CreateOrganizationRequest{
		Name:        "acme-lobby",
		DisplayName: "Acme Lobby Mailroom",
		PlanType:    "platinum",
	}

	response, err := suite.service.Create(suite.userID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPlanType)
	assert.Nil(suite.T(), response)
}

// TestCreateDuplicateName tests the unique-name conflict
func (suite *OrganizationServiceTestSuite) TestCreateDuplicateName() {
	req := &service.CreateOrganizationRequest{
		Name:        "acme-lobby",
		DisplayName: "Acme Lobby Mailroom",
	}

	suite.mockRepo.EXPECT().
		GetByName("acme-lobby").
		Return(&models.Organization{Name: "acme-lobby"}, nil).
		Times(1)

	response, err := suite.service.Create(suite.userID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
	assert.Nil(suite.T(), response)
}

// TestListForUser tests listing the caller's organizations with roles
func (suite *OrganizationServiceTestSuite) TestListForUser() {
	memberships := []models.Membership{
		{
			UserID:         suite.userID,
			OrganizationID: uuid.New(),
			Role:           models.MembershipRoleAdmin,
			Organization:   models.Organization{Name: "org-a", DisplayName: "Org A"},
		},
		{
			UserID:         suite.userID,
			OrganizationID: uuid.New(),
			Role:           models.MembershipRoleMember,
			Organization:   models.Organization{Name: "org-b", DisplayName: "Org B"},
		},
	}

	suite.mockMembershipRepo.EXPECT().
		GetByUserID(suite.userID).
		Return(memberships, nil).
		Times(1)

	responses, err := suite.service.ListForUser(suite.userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "org-a", responses[0].Organization.Name)
	assert.Equal(suite.T(), "admin", responses[0].Role)
	assert.Equal(suite.T(), "member", responses[1].Role)
}

// TestGetByIDNotFound tests the not-found mapping
func (suite *OrganizationServiceTestSuite) TestGetByIDNotFound() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.service.GetByID(orgID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.Nil(suite.T(), response)
}

// TestUpdate tests updating organization settings
func (suite *OrganizationServiceTestSuite) TestUpdate() {
	orgID := uuid.New()
	org := &models.Organization{
		BaseModel:   models.BaseModel{ID: orgID},
		Name:        "acme-lobby",
		DisplayName: "Old Name",
	}

	suite.mockRepo.EXPECT().
		GetByID(orgID).
		Return(org, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.service.Update(orgID, &service.UpdateOrganizationRequest{DisplayName: "New Name"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", response.DisplayName)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
