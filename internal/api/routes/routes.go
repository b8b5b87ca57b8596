package routes

import (
	"mailroom-backend/internal/api/handlers"
	"mailroom-backend/internal/api/middleware"
	"mailroom-backend/internal/auth"
	"mailroom-backend/internal/config"
	"mailroom-backend/internal/imaging"
	"mailroom-backend/internal/repository"
	"mailroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The returned
// dispatcher must be started before serving and shut down on exit.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *service.DispatchService) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	recipientRepo := repository.NewRecipientRepository(db)
	storageLocationRepo := repository.NewStorageLocationRepository(db)
	mailItemRepo := repository.NewMailItemRepository(db)
	integrationRepo := repository.NewIntegrationRepository(db)

	// Initialize services
	dispatchService := service.NewDispatchService(integrationRepo, recipientRepo, cfg)
	organizationService := service.NewOrganizationService(organizationRepo, membershipRepo, validator)
	mailItemService := service.NewMailItemService(mailItemRepo, organizationRepo, recipientRepo, storageLocationRepo, dispatchService, validator)
	recipientService := service.NewRecipientService(recipientRepo, validator)
	storageLocationService := service.NewStorageLocationService(storageLocationRepo, validator)
	integrationService := service.NewIntegrationService(integrationRepo, validator)
	dashboardService := service.NewDashboardService(mailItemRepo, organizationRepo)
	billingService := service.NewBillingService(cfg, organizationRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg, userRepo, organizationService, validator)
	authHandler := auth.NewAuthHandler(authService, cfg.Environment != "production")
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	mailItemHandler := handlers.NewMailItemHandler(mailItemService, imaging.Options{
		MaxWidth:  cfg.PhotoMaxWidth,
		MaxHeight: cfg.PhotoMaxHeight,
		Quality:   cfg.PhotoQuality,
		MaxBytes:  cfg.PhotoMaxBytes,
	})
	recipientHandler := handlers.NewRecipientHandler(recipientService)
	storageLocationHandler := handlers.NewStorageLocationHandler(storageLocationService)
	integrationHandler := handlers.NewIntegrationHandler(integrationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	billingHandler := handlers.NewBillingHandler(billingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: authentication and provider callbacks
	public := router.Group("/api")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
		public.POST("/reset-password", authHandler.ResetPassword)

		// Authenticated by provider signature, not by bearer token
		public.POST("/billing/webhook", billingHandler.HandleWebhook)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Organization routes: not tenant-scoped, the user acts on their
		// own memberships here
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
		}

		// Tenant-scoped routes: X-Organization-Id required and membership
		// verified on every request
		scoped := v1.Group("")
		scoped.Use(middleware.RequireOrganization(membershipRepo))
		{
			mailItems := scoped.Group("/mail-items")
			{
				mailItems.GET("", mailItemHandler.ListMailItems)
				mailItems.POST("", mailItemHandler.CreateMailItem)
				mailItems.GET("/:id", mailItemHandler.GetMailItem)
				mailItems.PUT("/:id", mailItemHandler.UpdateMailItem)
				mailItems.DELETE("/:id", mailItemHandler.DeleteMailItem)
				mailItems.POST("/:id/notify", mailItemHandler.NotifyMailItem)
				mailItems.POST("/:id/deliver", mailItemHandler.DeliverMailItem)
				mailItems.POST("/:id/photo", mailItemHandler.UploadMailItemPhoto)
			}

			recipients := scoped.Group("/recipients")
			{
				recipients.GET("", recipientHandler.ListRecipients)
				recipients.POST("", recipientHandler.CreateRecipient)
				recipients.GET("/:id", recipientHandler.GetRecipient)
				recipients.PUT("/:id", recipientHandler.UpdateRecipient)
				recipients.DELETE("/:id", recipientHandler.DeleteRecipient)
			}

			storageLocations := scoped.Group("/storage-locations")
			{
				storageLocations.GET("", storageLocationHandler.ListStorageLocations)
				storageLocations.POST("", storageLocationHandler.CreateStorageLocation)
				storageLocations.PUT("/:id", storageLocationHandler.UpdateStorageLocation)
				storageLocations.DELETE("/:id", storageLocationHandler.DeleteStorageLocation)
			}

			dashboard := scoped.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.GetStats)
				dashboard.GET("/recent-activity", dashboardHandler.GetRecentActivity)
			}

			// Integration and billing management require the admin role
			admin := scoped.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				integrations := admin.Group("/integrations")
				{
					integrations.GET("", integrationHandler.ListIntegrations)
					integrations.POST("", integrationHandler.CreateIntegration)
					integrations.GET("/:id", integrationHandler.GetIntegration)
					integrations.PUT("/:id", integrationHandler.UpdateIntegration)
					integrations.PATCH("/:id/active", integrationHandler.SetIntegrationActive)
					integrations.DELETE("/:id", integrationHandler.DeleteIntegration)
				}

				billing := admin.Group("/billing")
				{
					billing.POST("/create-checkout-session", billingHandler.CreateCheckoutSession)
					billing.POST("/create-portal-session", billingHandler.CreatePortalSession)
				}
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, dispatchService
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
