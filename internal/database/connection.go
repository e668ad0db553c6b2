// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/globalkerja/agency-backend/internal/config"
	"github.com/globalkerja/agency-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.AdminUser{},
		&models.JobVacancy{},
		&models.Application{},
		&models.StatusHistory{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.AuditLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Application indexes
		"CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status)",
		"CREATE INDEX IF NOT EXISTS idx_applications_created_at ON applications(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_applications_job ON applications(job_id)",

		// Status history indexes
		"CREATE INDEX IF NOT EXISTS idx_status_histories_application ON status_histories(application_id, changed_at)",

		// Content indexes
		"CREATE INDEX IF NOT EXISTS idx_job_vacancies_status ON job_vacancies(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_job_vacancies_country ON job_vacancies(country, status)",
		"CREATE INDEX IF NOT EXISTS idx_blog_posts_status ON blog_posts(status, published_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_testimonials_status ON testimonials(status)",

		// Admin indexes
		"CREATE INDEX IF NOT EXISTS idx_admin_users_email ON admin_users(email)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_admin_action ON audit_logs(admin_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",

		// Full-text search indexes
		"CREATE INDEX IF NOT EXISTS idx_job_vacancies_search ON job_vacancies USING GIN(to_tsvector('english', title || ' ' || description))",
		"CREATE INDEX IF NOT EXISTS idx_blog_posts_search ON blog_posts USING GIN(to_tsvector('english', title || ' ' || content))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default super admin
	var adminCount int64
	db.Model(&models.AdminUser{}).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.AdminUser{
			Name:     "System Administrator",
			Email:    "admin@globalkerja.com",
			Role:     models.AdminRoleSuperAdmin,
			IsActive: true,
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default super admin created successfully")
	}

	log.Println("Initial data seeding completed")
	return nil
}

// SeedDevelopmentData populates a few published vacancies so the public
// listing is not empty on a fresh development database.
func SeedDevelopmentData(db *gorm.DB) error {
	var jobCount int64
	db.Model(&models.JobVacancy{}).Count(&jobCount)
	if jobCount > 0 {
		return nil
	}

	var admin models.AdminUser
	if err := db.Order("created_at ASC").First(&admin).Error; err != nil {
		return fmt.Errorf("failed to find seed author: %w", err)
	}

	jobs := []models.JobVacancy{
		{
			Title:       "Caregiver",
			Slug:        "caregiver",
			Country:     "Taiwan",
			Location:    "Taipei",
			Category:    "Healthcare",
			Description: "Care for elderly patients in a private household.",
			Salary:      "NT$ 20,000 - 25,000 / month",
			Positions:   5,
			Status:      models.ContentStatusPublished,
			CreatedBy:   admin.ID,
		},
		{
			Title:       "Factory Operator",
			Slug:        "factory-operator",
			Country:     "Malaysia",
			Location:    "Penang",
			Category:    "Manufacturing",
			Description: "Operate and monitor production line machinery.",
			Salary:      "RM 1,800 - 2,400 / month",
			Positions:   10,
			Status:      models.ContentStatusPublished,
			CreatedBy:   admin.ID,
		},
		{
			Title:       "Construction Worker",
			Slug:        "construction-worker",
			Country:     "Japan",
			Location:    "Osaka",
			Category:    "Construction",
			Description: "General construction work under the specified skilled worker program.",
			Salary:      "¥ 180,000 - 220,000 / month",
			Positions:   8,
			Status:      models.ContentStatusPublished,
			CreatedBy:   admin.ID,
		},
	}

	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			return fmt.Errorf("failed to seed job vacancy: %w", err)
		}
	}

	log.Printf("Seeded %d development job vacancies", len(jobs))
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
