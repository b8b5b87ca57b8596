package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"mailroom-backend/internal/config"
	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/repository"
	"mailroom-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// AuthService provides password authentication and JWT issuance
type AuthService struct {
	cfg        *config.Config
	userRepo   repository.UserRepositoryInterface
	orgService service.OrganizationServiceInterface
	validator  *validator.Validate
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userRepo repository.UserRepositoryInterface, orgService service.OrganizationServiceInterface, validator *validator.Validate) *AuthService {
	return &AuthService{
		cfg:        cfg,
		userRepo:   userRepo,
		orgService: orgService,
		validator:  validator,
	}
}

// RegisterRequest creates a user and their first organization
type RegisterRequest struct {
	Email                   string `json:"email" validate:"required,email,max=255"`
	Password                string `json:"password" validate:"required,min=8,max=72"`
	FirstName               string `json:"first_name" validate:"required,max=100"`
	LastName                string `json:"last_name" validate:"required,max=100"`
	OrganizationName        string `json:"organization_name" validate:"required,min=1,max=100"`
	OrganizationDisplayName string `json:"organization_display_name,omitempty" validate:"omitempty,max=200"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest asks for a password reset token to be issued
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmResetRequest sets a new password using a reset token
type ConfirmResetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserResponse represents the authenticated user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// AuthResponse carries a fresh token and its user
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// Register creates a user and their first organization, returning a token
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	displayName := req.OrganizationDisplayName
	if displayName == "" {
		displayName = req.OrganizationName
	}
	if _, err := s.orgService.Create(user.ID, &service.CreateOrganizationRequest{
		Name:        req.OrganizationName,
		DisplayName: displayName,
	}); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a token
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// RequestPasswordReset issues a reset token for the user. The token is
// returned for delivery by the caller (email integration); a lookup on an
// unknown email succeeds without issuing anything so the endpoint does not
// leak which addresses exist.
func (s *AuthService) RequestPasswordReset(req *ResetPasswordRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	expiry := time.Now().Add(resetTokenTTL)
	user.ResetToken = token
	user.ResetExpiry = &expiry
	if err := s.userRepo.Update(user); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return token, nil
}

// ConfirmPasswordReset sets a new password using a previously issued token
func (s *AuthService) ConfirmPasswordReset(req *ConfirmResetRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByResetToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user.ResetExpiry == nil || time.Now().After(*user.ResetExpiry) {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetExpiry = nil
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ValidateJWT parses and validates a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) issueToken(user *models.User) (*AuthResponse, error) {
	expiryMinutes := s.cfg.JWTExpiryMinutes
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}
	expiresIn := time.Duration(expiryMinutes) * time.Minute

	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mailroom-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(expiresIn.Seconds()),
		User: UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}
