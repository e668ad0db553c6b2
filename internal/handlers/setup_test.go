// internal/handlers/setup_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/globalkerja/agency-backend/internal/config"
	"github.com/globalkerja/agency-backend/internal/i18n"
	"github.com/globalkerja/agency-backend/internal/middleware"
	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/ratelimit"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize("../i18n/locales"))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.JobVacancy{},
		&models.Application{},
		&models.StatusHistory{},
		&models.Testimonial{},
	))

	cfg := &config.Config{}
	cfg.Environment = "test"
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.SessionTTL = 8
	cfg.JWT.CookieName = "agency_session"
	cfg.RateLimit.SubmissionLimit = 5
	cfg.RateLimit.SubmissionWindowMin = 15

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	middleware.SessionCookieName = cfg.JWT.CookieName

	applicationService := services.NewApplicationService(db)
	authService := services.NewAuthService(db, cfg)
	jobService := services.NewJobService(db)
	adminService := services.NewAdminService(db)

	applicationHandler := NewApplicationHandler(applicationService)
	authHandler := NewAuthHandler(authService, cfg)
	jobHandler := NewJobHandler(jobService)
	adminHandler := NewAdminHandler(adminService)

	store := ratelimit.NewMemoryStore()
	window := time.Duration(cfg.RateLimit.SubmissionWindowMin) * time.Minute

	r := gin.New()
	v1 := r.Group("/v1")
	{
		v1.GET("/jobs", jobHandler.ListPublished)
		v1.GET("/jobs/:slug", jobHandler.GetPublished)
		v1.POST("/applications",
			middleware.SubmissionRateLimit(store, cfg.RateLimit.SubmissionLimit, window),
			applicationHandler.Submit,
		)

		admin := v1.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)
			admin.GET("/auth/me", middleware.AuthRequired(), authHandler.Me)

			protected := admin.Group("", middleware.AuthRequired())
			{
				protected.GET("/applications", applicationHandler.List)
				protected.GET("/applications/:id", applicationHandler.Get)
				protected.GET("/applications/:id/history", applicationHandler.GetHistory)
				protected.PUT("/applications/:id/status", applicationHandler.UpdateStatus)
				protected.DELETE("/applications/:id", applicationHandler.Delete)

				adminUsers := protected.Group("/admin-users", middleware.SuperAdminRequired())
				{
					adminUsers.GET("", adminHandler.ListAdmins)
					adminUsers.POST("", adminHandler.CreateAdmin)
				}
			}
		}
	}

	return &testEnv{router: r, db: db, cfg: cfg}
}

func (e *testEnv) createAdmin(t *testing.T, email string, role models.AdminRole) *models.AdminUser {
	t.Helper()

	admin := &models.AdminUser{
		Name:     "Test Admin",
		Email:    email,
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, admin.SetPassword("Sup3r-secret!"))
	require.NoError(t, e.db.Create(admin).Error)
	return admin
}

func (e *testEnv) loginToken(t *testing.T, email string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/v1/admin/auth/login", gin.H{
		"email":    email,
		"password": "Sup3r-secret!",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func (e *testEnv) request(t *testing.T, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func submissionPayload(email string) gin.H {
	return gin.H{
		"full_name":         "Siti Rahmawati",
		"email":             email,
		"phone":             "+62 812-3456-7890",
		"preferred_country": "Taiwan",
		"has_passport":      true,
		"passport_number":   "C1234567",
		"consent":           true,
	}
}
