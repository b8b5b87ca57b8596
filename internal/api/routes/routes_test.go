package routes_test

import (
	"testing"

	"mailroom-backend/internal/api/routes"
	"mailroom-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestSetupRoutesRegistersDocumentedEndpoints pins the public route table to
// the documented API paths. Registration does not touch the database, so a
// nil handle is enough to build the tree.
func TestSetupRoutesRegistersDocumentedEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, _ := routes.SetupRoutes(nil, &config.Config{})

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"POST /api/register",
		"POST /api/login",
		"POST /api/reset-password",
		"POST /api/billing/webhook",
		"GET /api/v1/organizations",
		"POST /api/v1/mail-items",
		"POST /api/v1/mail-items/:id/notify",
		"POST /api/v1/mail-items/:id/deliver",
		"POST /api/v1/mail-items/:id/photo",
		"GET /api/v1/recipients",
		"GET /api/v1/storage-locations",
		"GET /api/v1/integrations",
		"GET /api/v1/dashboard/stats",
		"GET /api/v1/dashboard/recent-activity",
		"POST /api/v1/billing/create-checkout-session",
		"POST /api/v1/billing/create-portal-session",
	}
	for _, endpoint := range expected {
		assert.True(t, registered[endpoint], "missing route %s", endpoint)
	}

	// The short spellings were never part of the contract.
	assert.False(t, registered["GET /api/v1/dashboard/activity"])
	assert.False(t, registered["POST /api/v1/billing/checkout"])
	assert.False(t, registered["POST /api/v1/billing/portal"])
}

func TestSetupHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := routes.SetupHealthRoutes(nil)

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	assert.True(t, registered["GET /health"])
	assert.True(t, registered["GET /health/ready"])
	assert.True(t, registered["GET /health/live"])
	assert.False(t, registered["GET /api/v1/organizations"])
}
