package main

import (
	"log"

	"github.com/arialabs/aria-backend/internal/config"
	"github.com/arialabs/aria-backend/internal/constants"
	"github.com/arialabs/aria-backend/internal/database"
	"github.com/arialabs/aria-backend/internal/handlers"
	"github.com/arialabs/aria-backend/internal/middleware"
	"github.com/arialabs/aria-backend/internal/repository"
	"github.com/arialabs/aria-backend/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	knowledgeRepo := repository.NewKnowledgeRepository(db)
	integrationRepo := repository.NewIntegrationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(cfg.SecretKey, constants.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	taskService := services.NewTaskService(taskRepo)
	knowledgeService := services.NewKnowledgeService(knowledgeRepo)
	integrationService := services.NewIntegrationService(integrationRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)
	aiService := services.NewAIService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService)
	integrationHandler := handlers.NewIntegrationHandler(integrationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Initialize Gin router
	r := gin.Default()

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Everything below requires a valid bearer token
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokenService))
		{
			tasks := protected.Group("/tasks")
			{
				tasks.GET("", taskHandler.ListTasks)
				tasks.POST("", taskHandler.CreateTask)
				tasks.PUT("/:id", taskHandler.UpdateTaskStatus)
				tasks.DELETE("/:id", taskHandler.DeleteTask)
			}

			protected.GET("/knowledge", knowledgeHandler.ListEntries)
			protected.POST("/knowledge", knowledgeHandler.CreateEntry)

			protected.GET("/integrations", integrationHandler.ListIntegrations)
			protected.POST("/integrations", integrationHandler.CreateIntegration)

			protected.GET("/dashboard", dashboardHandler.GetDashboard)

			ai := protected.Group("/ai")
			{
				ai.POST("/analyze", aiHandler.Analyze)
				ai.POST("/generate", aiHandler.Generate)
			}
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
