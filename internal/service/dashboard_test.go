package service_test

import (
	"testing"
	"time"

	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/mocks"
	"mailroom-backend/internal/repository"
	"mailroom-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockMailItemRepo *mocks.MockMailItemRepositoryInterface
	mockOrgRepo      *mocks.MockOrganizationRepositoryInterface
	service          *service.DashboardService
	orgID            uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMailItemRepo = mocks.NewMockMailItemRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.service = service.NewDashboardService(suite.mockMailItemRepo, suite.mockOrgRepo)
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetStats tests the dashboard counters
func (suite *DashboardServiceTestSuite) TestGetStats() {
	org := &models.Organization{
		BaseModel:          models.BaseModel{ID: suite.orgID},
		MaxPackagesMonthly: 1000,
	}
	stats := &repository.MailItemStats{
		Pending:      4,
		Notified:     2,
		Delivered:    30,
		ArrivedToday: 3,
		MonthToDate:  36,
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(suite.orgID).
		Return(org, nil).
		Times(1)
	suite.mockMailItemRepo.EXPECT().
		GetStats(suite.orgID, gomock.Any()).
		Return(stats, nil).
		Times(1)

	response, err := suite.service.GetStats(suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), response.Pending)
	assert.Equal(suite.T(), int64(36), response.MonthToDate)
	assert.Equal(suite.T(), 1000, response.MaxPackagesMonthly)
}

// TestGetStatsOrganizationNotFound tests the not-found mapping
func (suite *DashboardServiceTestSuite) TestGetStatsOrganizationNotFound() {
	suite.mockOrgRepo.EXPECT().
		GetByID(suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.service.GetStats(suite.orgID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetRecentActivity tests the activity feed with recipient names
func (suite *DashboardServiceTestSuite) TestGetRecentActivity() {
	notifiedAt := time.Now()
	items := []models.MailItem{
		{
			BaseModel:  models.BaseModel{ID: uuid.New(), UpdatedAt: time.Now()},
			Type:       models.MailItemTypePackage,
			Status:     models.MailItemStatusNotified,
			ArrivedAt:  time.Now().Add(-time.Hour),
			NotifiedAt: &notifiedAt,
			Recipient:  &models.Recipient{FirstName: "Robin", LastName: "Tenant"},
		},
		{
			BaseModel: models.BaseModel{ID: uuid.New(), UpdatedAt: time.Now()},
			Type:      models.MailItemTypeLetter,
			Status:    models.MailItemStatusPending,
			ArrivedAt: time.Now(),
		},
	}

	suite.mockMailItemRepo.EXPECT().
		GetRecentActivity(suite.orgID, 10).
		Return(items, nil).
		Times(1)

	entries, err := suite.service.GetRecentActivity(suite.orgID, 10)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 2)
	assert.Equal(suite.T(), "Robin Tenant", entries[0].RecipientName)
	assert.Empty(suite.T(), entries[1].RecipientName)
}

// TestGetRecentActivityLimitClamped tests that out-of-range limits fall back
func (suite *DashboardServiceTestSuite) TestGetRecentActivityLimitClamped() {
	suite.mockMailItemRepo.EXPECT().
		GetRecentActivity(suite.orgID, 10).
		Return([]models.MailItem{}, nil).
		Times(1)

	entries, err := suite.service.GetRecentActivity(suite.orgID, 500)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), entries)
}

// TestDashboardServiceTestSuite runs the test suite
func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
