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

// RecipientServiceTestSuite defines the test suite for RecipientService
type RecipientServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockRecipientRepositoryInterface
	service  *service.RecipientService
	orgID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RecipientServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRecipientRepositoryInterface(suite.ctrl)
	suite.service = service.NewRecipientService(suite.mockRepo, validator.New())
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *RecipientServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating a recipient
func (suite *RecipientServiceTestSuite) TestCreate() {
	req := &service.CreateRecipientRequest{
		FirstName: "Robin",
		LastName:  "Tenant",
		Email:     "robin@test.com",
		Unit:      "4B",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(recipient *models.Recipient) error {
			assert.Equal(suite.T(), suite.orgID, recipient.OrganizationID)
			assert.Equal(suite.T(), models.RecipientTypeEmployee, recipient.Type)
			assert.True(suite.T(), recipient.IsActive)
			return nil
		}).
		Times(1)

	response, err := suite.service.Create(suite.orgID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Robin", response.FirstName)
	assert.Equal(suite.T(), "employee", response.Type)
	assert.Equal(suite.T(), "robin@test.com", *response.Email)
}

// TestCreateInvalidType tests that an unknown recipient type is rejected
func (suite *RecipientServiceTestSuite) TestCreateInvalidType() {
	req := &service.CreateRecipientRequest{
		FirstName: "Robin",
		LastName:  "Tenant",
		Type:      "visitor",
	}

	response, err := suite.service.Create(suite.orgID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRecipientType)
	assert.Nil(suite.T(), response)
}

// TestCreateInvalidEmail tests validation of the email field
func (suite *RecipientServiceTestSuite) TestCreateInvalidEmail() {
	req := &service.CreateRecipientRequest{
		FirstName: "Robin",
		LastName:  "Tenant",
		Email:     "not-an-email",
	}

	response, err := suite.service.Create(suite.orgID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestList tests listing recipients with the active-only filter
func (suite *RecipientServiceTestSuite) TestList() {
	recipients := []models.Recipient{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "A", LastName: "One", Type: models.RecipientTypeEmployee, IsActive: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "B", LastName: "Two", Type: models.RecipientTypeResident, IsActive: true},
	}

	suite.mockRepo.EXPECT().
		GetByOrganizationID(suite.orgID, true, 50, 0).
		Return(recipients, int64(2), nil).
		Times(1)

	response, err := suite.service.List(suite.orgID, true, 1, 50)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Recipients, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestUpdateDeactivate tests deactivating a recipient
func (suite *RecipientServiceTestSuite) TestUpdateDeactivate() {
	recipientID := uuid.New()
	recipient := &models.Recipient{
		BaseModel:      models.BaseModel{ID: recipientID},
		OrganizationID: suite.orgID,
		FirstName:      "Robin",
		LastName:       "Tenant",
		Type:           models.RecipientTypeEmployee,
		IsActive:       true,
	}
	inactive := false
	req := &service.UpdateRecipientRequest{
		FirstName: "Robin",
		LastName:  "Tenant",
		IsActive:  &inactive,
	}

	suite.mockRepo.EXPECT().
		GetByID(suite.orgID, recipientID).
		Return(recipient, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.service.Update(suite.orgID, recipientID, req)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.IsActive)
}

// TestDeleteNotFound tests deleting a missing recipient
func (suite *RecipientServiceTestSuite) TestDeleteNotFound() {
	recipientID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(suite.orgID, recipientID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.service.Delete(suite.orgID, recipientID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipientNotFound)
}

// TestRecipientServiceTestSuite runs the test suite
func TestRecipientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipientServiceTestSuite))
}
