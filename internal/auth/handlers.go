package auth

import (
	"net/http"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	devMode bool
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, devMode bool) *AuthHandler {
	return &AuthHandler{service: service, devMode: devMode}
}

// Register handles POST /api/register
// @Summary Register a new user with their first organization
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse "Registered"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "User or organization already exists"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/login
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse "Authenticated"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetPassword handles POST /api/reset-password. With a token in the body it
// completes the reset; without one it issues a reset token for the email.
// The response is identical whether or not the email exists.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var body struct {
		Email       string `json:"email"`
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if body.Token != "" {
		err := h.service.ConfirmPasswordReset(&ConfirmResetRequest{Token: body.Token, NewPassword: body.NewPassword})
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
		return
	}

	token, err := h.service.RequestPasswordReset(&ResetPasswordRequest{Email: body.Email})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if token != "" && h.devMode {
		// Delivery normally happens over the email integration; in
		// development the token is logged so the flow can be exercised
		// without SMTP.
		logger.New().WithField("email", body.Email).Debugf("password reset token: %s", token)
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "If the account exists, a reset link has been sent"})
}
