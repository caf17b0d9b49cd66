package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arialabs/aria-backend/internal/config"
	"github.com/arialabs/aria-backend/internal/constants"
	"github.com/arialabs/aria-backend/internal/middleware"
	"github.com/arialabs/aria-backend/internal/models"
	"github.com/arialabs/aria-backend/internal/repository"
	"github.com/arialabs/aria-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testAPI wires the full router against an in-memory database, mirroring the
// wiring in cmd/server.
type testAPI struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *services.TokenService
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.KnowledgeEntry{},
		&models.Integration{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	cfg := &config.Config{
		SecretKey:      "test-secret",
		ServiceName:    "ARIA Enhanced",
		ServiceVersion: "2.0.0",
	}

	tokenService := services.NewTokenService(cfg.SecretKey, constants.TokenTTL)
	authService := services.NewAuthService(repository.NewUserRepository(db), tokenService)
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	knowledgeService := services.NewKnowledgeService(repository.NewKnowledgeRepository(db))
	integrationService := services.NewIntegrationService(repository.NewIntegrationRepository(db))
	dashboardService := services.NewDashboardService(repository.NewDashboardRepository(db))
	aiService := services.NewAIService()

	healthHandler := NewHealthHandler(cfg)
	authHandler := NewAuthHandler(authService)
	taskHandler := NewTaskHandler(taskService)
	knowledgeHandler := NewKnowledgeHandler(knowledgeService)
	integrationHandler := NewIntegrationHandler(integrationService)
	dashboardHandler := NewDashboardHandler(dashboardService)
	aiHandler := NewAIHandler(aiService)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokenService))
	protected.GET("/tasks", taskHandler.ListTasks)
	protected.POST("/tasks", taskHandler.CreateTask)
	protected.PUT("/tasks/:id", taskHandler.UpdateTaskStatus)
	protected.DELETE("/tasks/:id", taskHandler.DeleteTask)
	protected.GET("/knowledge", knowledgeHandler.ListEntries)
	protected.POST("/knowledge", knowledgeHandler.CreateEntry)
	protected.GET("/integrations", integrationHandler.ListIntegrations)
	protected.POST("/integrations", integrationHandler.CreateIntegration)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.POST("/ai/analyze", aiHandler.Analyze)
	protected.POST("/ai/generate", aiHandler.Generate)

	return &testAPI{
		db:     db,
		router: r,
		tokens: tokenService,
	}
}

// request performs an HTTP request against the test router. A non-empty token
// is sent as a bearer Authorization header.
func (a *testAPI) request(t *testing.T, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user through the API and returns their token.
func (a *testAPI) registerUser(t *testing.T, username, email, password string) string {
	t.Helper()

	w := a.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	token, ok := response["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
