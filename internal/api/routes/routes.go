package routes

import (
	"time"

	"agent-distribution-backend/internal/api/handlers"
	"agent-distribution-backend/internal/api/middleware"
	"agent-distribution-backend/internal/auth"
	"agent-distribution-backend/internal/config"
	"agent-distribution-backend/internal/messaging"
	"agent-distribution-backend/internal/repository"
	"agent-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
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
	userRepo := repository.NewUserRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	batchRepo := repository.NewUploadBatchRepository(db)
	itemRepo := repository.NewContactItemRepository(db)

	// Initialize the messaging dispatcher
	dispatcher := messaging.NewGatewayDispatcher(
		cfg.WhatsAppGatewayURL,
		time.Duration(cfg.WhatsAppTimeoutSec)*time.Second,
	)

	// Initialize services
	agentService := service.NewAgentService(agentRepo, itemRepo, validator, cfg.DefaultCountryCode)
	uploadService := service.NewUploadService(batchRepo, itemRepo, agentRepo, cfg.DistributionPoolSize)
	dashboardService := service.NewDashboardService(agentRepo, batchRepo, itemRepo)
	messagingService := service.NewMessagingService(agentRepo, batchRepo, itemRepo, dispatcher)

	// Initialize auth service and middleware
	authService := auth.NewAuthService(userRepo, cfg)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	agentHandler := handlers.NewAgentHandler(agentService)
	listHandler := handlers.NewListHandler(uploadService, cfg.UploadMaxBytes)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	messagingHandler := handlers.NewMessagingHandler(dispatcher, messagingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API routes - all endpoints require authentication
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		// Agent routes
		agents := api.Group("/agents")
		{
			agents.GET("", agentHandler.ListAgents)
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("/:id", agentHandler.GetAgent)
			agents.PUT("/:id", agentHandler.UpdateAgent)
			agents.DELETE("/:id", agentHandler.DeleteAgent)
			agents.GET("/:id/items", agentHandler.GetAgentItems)
		}

		// List upload routes
		lists := api.Group("/lists")
		{
			lists.GET("", listHandler.ListRecords)
			lists.POST("/upload", listHandler.UploadList)
			lists.GET("/uploads", listHandler.UploadHistory)
			lists.GET("/summary", listHandler.GetSummary)
			lists.GET("/download/:id", listHandler.DownloadList)
			lists.GET("/:id", listHandler.GetRecord)
			lists.GET("/:id/items", listHandler.GetRecordItems)
		}

		// Dashboard routes
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
		}

		// Messaging routes
		whatsapp := api.Group("/whatsapp")
		{
			whatsapp.POST("/connect", messagingHandler.Connect)
			whatsapp.GET("/status", messagingHandler.Status)
			whatsapp.POST("/disconnect", messagingHandler.Disconnect)
			whatsapp.POST("/send", messagingHandler.Send)
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

	return router
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
