package service_test

import (
	"encoding/json"
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

// IntegrationServiceTestSuite defines the test suite for IntegrationService
type IntegrationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockIntegrationRepositoryInterface
	service  *service.IntegrationService
	orgID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *IntegrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockIntegrationRepositoryInterface(suite.ctrl)
	suite.service = service.NewIntegrationService(suite.mockRepo, validator.New())
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *IntegrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func webhookConfig() json.RawMessage {
	config, _ := json.Marshal(models.WebhookConfig{URL: "https://hooks.test.com/mailroom"})
	return config
}

// TestCreate tests creating an integration
func (suite *IntegrationServiceTestSuite) TestCreate() {
	req := &service.CreateIntegrationRequest{
		Type:   "webhook",
		Name:   "Package Hooks",
		Config: webhookConfig(),
	}

	suite.mockRepo.EXPECT().
		GetByTypeAndOrganization(suite.orgID, models.IntegrationTypeWebhook).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(integration *models.Integration) error {
			assert.Equal(suite.T(), suite.orgID, integration.OrganizationID)
			assert.True(suite.T(), integration.IsActive)
			return nil
		}).
		Times(1)

	response, err := suite.service.Create(suite.orgID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "webhook", response.Type)
	assert.True(suite.T(), response.IsActive)
}

// TestCreateDuplicateChannel tests the one-per-channel conflict
func (suite *IntegrationServiceTestSuite) TestCreateDuplicateChannel() {
	req := &service.CreateIntegrationRequest{
		Type:   "webhook",
		Name:   "Second Webhook",
		Config: webhookConfig(),
	}

	suite.mockRepo.EXPECT().
		GetByTypeAndOrganization(suite.orgID, models.IntegrationTypeWebhook).
		Return(&models.Integration{Type: models.IntegrationTypeWebhook}, nil).
		Times(1)

	response, err := suite.service.Create(suite.orgID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIntegrationExists)
	assert.Nil(suite.T(), response)
}

// TestCreateInvalidType tests that an unknown channel type is rejected
func (suite *IntegrationServiceTestSuite) TestCreateInvalidType() {
	req := &service.CreateIntegrationRequest{Type: "carrier-pigeon", Name: "Pigeons"}

	response, err := suite.service.Create(suite.orgID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidIntegrationType)
	assert.Nil(suite.T(), response)
}

// TestSetActive tests toggling without touching the config
func (suite *IntegrationServiceTestSuite) TestSetActive() {
	integrationID := uuid.New()
	integration := &models.Integration{
		BaseModel:      models.BaseModel{ID: integrationID},
		OrganizationID: suite.orgID,
		Type:           models.IntegrationTypeWebhook,
		Name:           "Package Hooks",
		Config:         webhookConfig(),
		IsActive:       true,
	}

	suite.mockRepo.EXPECT().
		GetByID(suite.orgID, integrationID).
		Return(integration, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Integration) error {
			assert.False(suite.T(), updated.IsActive)
			assert.JSONEq(suite.T(), string(webhookConfig()), string(updated.Config))
			return nil
		}).
		Times(1)

	response, err := suite.service.SetActive(suite.orgID, integrationID, false)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.IsActive)
}

// TestGetByIDNotFound tests the not-found mapping
func (suite *IntegrationServiceTestSuite) TestGetByIDNotFound() {
	integrationID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(suite.orgID, integrationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.service.GetByID(suite.orgID, integrationID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIntegrationNotFound)
	assert.Nil(suite.T(), response)
}

// TestDelete tests deleting an integration
func (suite *IntegrationServiceTestSuite) TestDelete() {
	integrationID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(suite.orgID, integrationID).
		Return(&models.Integration{BaseModel: models.BaseModel{ID: integrationID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Delete(suite.orgID, integrationID).
		Return(nil).
		Times(1)

	err := suite.service.Delete(suite.orgID, integrationID)

	assert.NoError(suite.T(), err)
}

// TestIntegrationServiceTestSuite runs the test suite
func TestIntegrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationServiceTestSuite))
}
