package auth

import (
	"testing"
	"time"

	"mailroom-backend/internal/config"
	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/mocks"
	"mailroom-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockOrgService *mocks.MockOrganizationServiceInterface
	service        *AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.service = NewAuthService(&config.Config{
		JWTSecret:        "test-secret",
		JWTExpiryMinutes: 60,
	}, suite.mockUserRepo, suite.mockOrgService, validator.New())
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) activeUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(suite.T(), err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "jane@test.com",
		PasswordHash: string(hash),
		FirstName:    "Jane",
		LastName:     "Doe",
		IsActive:     true,
	}
}

// TestRegister tests creating a user with their first organization
func (suite *AuthServiceTestSuite) TestRegister() {
	req := &RegisterRequest{
		Email:            "jane@test.com",
		Password:         "sup3r-secret",
		FirstName:        "Jane",
		LastName:         "Doe",
		OrganizationName: "acme-lobby",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("jane@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			assert.True(suite.T(), user.IsActive)
			assert.NotEqual(suite.T(), "sup3r-secret", user.PasswordHash)
			return nil
		}).
		Times(1)
	suite.mockOrgService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(userID uuid.UUID, orgReq *service.CreateOrganizationRequest) (*service.OrganizationResponse, error) {
			assert.Equal(suite.T(), "acme-lobby", orgReq.Name)
			assert.Equal(suite.T(), "acme-lobby", orgReq.DisplayName)
			return &service.OrganizationResponse{ID: uuid.New(), Name: orgReq.Name}, nil
		}).
		Times(1)

	response, err := suite.service.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.Equal(suite.T(), "bearer", response.TokenType)
	assert.Equal(suite.T(), "jane@test.com", response.User.Email)
}

// TestRegisterDuplicateEmail tests the duplicate-email conflict
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &RegisterRequest{
		Email:            "jane@test.com",
		Password:         "sup3r-secret",
		FirstName:        "Jane",
		LastName:         "Doe",
		OrganizationName: "acme-lobby",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("jane@test.com").
		Return(&models.User{Email: "jane@test.com"}, nil).
		Times(1)

	response, err := suite.service.Register(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
	assert.Nil(suite.T(), response)
}

// TestLogin tests credential verification and token issuance
func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.activeUser("sup3r-secret")

	suite.mockUserRepo.EXPECT().
		GetByEmail("jane@test.com").
		Return(user, nil).
		Times(1)

	response, err := suite.service.Login(&LoginRequest{
		Email:    "jane@test.com",
		Password: "sup3r-secret",
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response.AccessToken)

	// The issued token round-trips through validation.
	claims, err := suite.service.ValidateJWT(response.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
	assert.Equal(suite.T(), "jane@test.com", claims.Email)
}

// TestLoginWrongPassword tests that a bad password reads as invalid credentials
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.activeUser("sup3r-secret")

	suite.mockUserRepo.EXPECT().
		GetByEmail("jane@test.com").
		Return(user, nil).
		Times(1)

	response, err := suite.service.Login(&LoginRequest{
		Email:    "jane@test.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), response)
}

// TestLoginUnknownEmail tests that a missing account reads the same as a bad password
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("ghost@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.service.Login(&LoginRequest{
		Email:    "ghost@test.com",
		Password: "whatever1",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), response)
}

// TestLoginInactiveUser tests the inactive-account guard
func (suite *AuthServiceTestSuite) TestLoginInactiveUser() {
	user := suite.activeUser("sup3r-secret")
	user.IsActive = false

	suite.mockUserRepo.EXPECT().
		GetByEmail("jane@test.com").
		Return(user, nil).
		Times(1)

	response, err := suite.service.Login(&LoginRequest{
		Email:    "jane@test.com",
		Password: "sup3r-secret",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
	assert.Nil(suite.T(), response)
}

// TestRequestPasswordReset tests issuing a reset token
func (suite *AuthServiceTestSuite) TestRequestPasswordReset() {
	user := suite.activeUser("sup3r-secret")

	suite.mockUserRepo.EXPECT().
		GetByEmail("jane@test.com").
		Return(user, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.User) error {
			assert.NotEmpty(suite.T(), updated.ResetToken)
			assert.NotNil(suite.T(), updated.ResetExpiry)
			return nil
		}).
		Times(1)

	token, err := suite.service.RequestPasswordReset(&ResetPasswordRequest{Email: "jane@test.com"})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), token, 64)
}

// TestRequestPasswordResetUnknownEmail tests that unknown addresses are not revealed
func (suite *AuthServiceTestSuite) TestRequestPasswordResetUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("ghost@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	token, err := suite.service.RequestPasswordReset(&ResetPasswordRequest{Email: "ghost@test.com"})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), token)
}

// TestConfirmPasswordReset tests setting a new password with a valid token
func (suite *AuthServiceTestSuite) TestConfirmPasswordReset() {
	user := suite.activeUser("old-password")
	expiry := time.Now().Add(30 * time.Minute)
	user.ResetToken = "valid-token"
	user.ResetExpiry = &expiry

	suite.mockUserRepo.EXPECT().
		GetByResetToken("valid-token").
		Return(user, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.User) error {
			assert.Empty(suite.T(), updated.ResetToken)
			assert.Nil(suite.T(), updated.ResetExpiry)
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword(
				[]byte(updated.PasswordHash), []byte("new-password1")))
			return nil
		}).
		Times(1)

	err := suite.service.ConfirmPasswordReset(&ConfirmResetRequest{
		Token:       "valid-token",
		NewPassword: "new-password1",
	})

	assert.NoError(suite.T(), err)
}

// TestConfirmPasswordResetExpiredToken tests that expired tokens are rejected
func (suite *AuthServiceTestSuite) TestConfirmPasswordResetExpiredToken() {
	user := suite.activeUser("old-password")
	expiry := time.Now().Add(-time.Minute)
	user.ResetToken = "expired-token"
	user.ResetExpiry = &expiry

	suite.mockUserRepo.EXPECT().
		GetByResetToken("expired-token").
		Return(user, nil).
		Times(1)

	err := suite.service.ConfirmPasswordReset(&ConfirmResetRequest{
		Token:       "expired-token",
		NewPassword: "new-password1",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidResetToken)
}

// TestValidateJWTWrongSecret tests that tokens signed elsewhere are rejected
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := NewAuthService(&config.Config{JWTSecret: "other-secret"}, suite.mockUserRepo, suite.mockOrgService, validator.New())
	user := suite.activeUser("sup3r-secret")

	response, err := other.issueToken(user)
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateJWT(response.AccessToken)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
