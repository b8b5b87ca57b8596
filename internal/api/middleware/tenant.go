package middleware

import (
	"errors"
	"net/http"

	"mailroom-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationHeader carries the tenant id on every organization-scoped request.
const OrganizationHeader = "X-Organization-Id"

// RequireOrganization resolves the tenant from the X-Organization-Id header,
// verifies the authenticated user's membership, and injects the organization
// id and role into the request context. Handlers read the tenant from the
// context and never from user-supplied payloads, which keeps tenant isolation
// in one place.
func RequireOrganization(membershipRepo repository.MembershipRepositoryInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(OrganizationHeader)
		if header == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": OrganizationHeader + " header is required"})
			c.Abort()
			return
		}

		orgID, err := uuid.Parse(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization id: invalid UUID format"})
			c.Abort()
			return
		}

		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		uid, ok := userID.(uuid.UUID)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
			c.Abort()
			return
		}

		membership, err := membershipRepo.GetByUserAndOrganization(uid, orgID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"error": "user is not a member of this organization"})
				c.Abort()
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify membership", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("organization_id", orgID)
		c.Set("organization_role", string(membership.Role))

		c.Next()
	}
}

// RequireAdmin rejects requests whose membership role is not admin.
// Must run after RequireOrganization.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("organization_role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "organization admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OrganizationID extracts the resolved tenant id from the request context
func OrganizationID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("organization_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
