// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/globalkerja/agency-backend/internal/config"
	"github.com/globalkerja/agency-backend/internal/handlers"
	"github.com/globalkerja/agency-backend/internal/middleware"
	"github.com/globalkerja/agency-backend/internal/ratelimit"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage service")
	}

	applicationService := services.NewApplicationService(db)
	authService := services.NewAuthService(db, cfg)
	jobService := services.NewJobService(db)
	blogService := services.NewBlogService(db)
	testimonialService := services.NewTestimonialService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	jobHandler := handlers.NewJobHandler(jobService)
	blogHandler := handlers.NewBlogHandler(blogService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Submission counter store: process-local by default, shared via Redis
	// when configured.
	var submissionStore ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		submissionStore = ratelimit.NewRedisStore(client)
	}
	submissionWindow := time.Duration(cfg.RateLimit.SubmissionWindowMin) * time.Minute

	// Set session secret and cookie name
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	middleware.SessionCookieName = cfg.JWT.CookieName

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Public content
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListPublished)
			jobs.GET("/:slug", jobHandler.GetPublished)
		}

		blog := v1.Group("/blog")
		{
			blog.GET("", blogHandler.ListPublished)
			blog.GET("/:slug", blogHandler.GetPublished)
		}

		v1.GET("/testimonials", testimonialHandler.ListPublished)

		// Public application submission
		applications := v1.Group("/applications")
		{
			applications.POST("",
				middleware.SubmissionRateLimit(submissionStore, cfg.RateLimit.SubmissionLimit, submissionWindow),
				applicationHandler.Submit,
			)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuditLogMiddleware(db))
		{
			// Authentication
			auth := admin.Group("/auth")
			auth.Use(middleware.AuthRateLimit())
			{
				auth.POST("/login", authHandler.Login)
				auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
				auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
				auth.PUT("/password", middleware.AuthRequired(), authHandler.ChangePassword)
			}

			protected := admin.Group("")
			protected.Use(middleware.AuthRequired())
			{
				// Dashboard
				protected.GET("/dashboard/stats", adminHandler.GetDashboardStats)

				// Application management
				adminApplications := protected.Group("/applications")
				{
					adminApplications.GET("", applicationHandler.List)
					adminApplications.GET("/:id", applicationHandler.Get)
					adminApplications.GET("/:id/history", applicationHandler.GetHistory)
					adminApplications.PUT("/:id/status", applicationHandler.UpdateStatus)
					adminApplications.DELETE("/:id", applicationHandler.Delete)
				}

				// Content management
				adminJobs := protected.Group("/jobs")
				{
					adminJobs.GET("", jobHandler.List)
					adminJobs.GET("/:id", jobHandler.Get)
					adminJobs.POST("", jobHandler.Create)
					adminJobs.PUT("/:id", jobHandler.Update)
					adminJobs.DELETE("/:id", jobHandler.Delete)
				}

				adminBlog := protected.Group("/blog")
				{
					adminBlog.GET("", blogHandler.List)
					adminBlog.POST("", blogHandler.Create)
					adminBlog.PUT("/:id", blogHandler.Update)
					adminBlog.DELETE("/:id", blogHandler.Delete)
				}

				adminTestimonials := protected.Group("/testimonials")
				{
					adminTestimonials.GET("", testimonialHandler.List)
					adminTestimonials.POST("", testimonialHandler.Create)
					adminTestimonials.PUT("/:id", testimonialHandler.Update)
					adminTestimonials.DELETE("/:id", testimonialHandler.Delete)
				}

				// File uploads
				protected.POST("/uploads/:category", middleware.UploadRateLimit(), uploadHandler.Upload)

				// Admin user management
				adminUsers := protected.Group("/admin-users")
				adminUsers.Use(middleware.SuperAdminRequired())
				{
					adminUsers.GET("", adminHandler.ListAdmins)
					adminUsers.POST("", adminHandler.CreateAdmin)
					adminUsers.PUT("/:id", adminHandler.UpdateAdmin)
				}
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
