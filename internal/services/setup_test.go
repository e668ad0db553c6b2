// internal/services/setup_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/globalkerja/agency-backend/internal/models"
)

// newTestDB opens an in-memory SQLite database and migrates the tables the
// services under test touch. BlogPost is excluded: its tags column uses a
// Postgres array type.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
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

	return db
}

func createTestAdmin(t *testing.T, db *gorm.DB, role models.AdminRole) *models.AdminUser {
	t.Helper()

	admin := &models.AdminUser{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, admin.SetPassword("Sup3r-secret!"))
	require.NoError(t, db.Create(admin).Error)

	return admin
}

func validSubmission() *SubmitApplicationRequest {
	return &SubmitApplicationRequest{
		FullName:         "Siti Rahmawati",
		Email:            "siti@example.com",
		Phone:            "+62 812-3456-7890",
		BirthDate:        "1995-04-12",
		Education:        "SMA",
		PreferredCountry: "Taiwan",
		PreferredJob:     "Caregiver",
		HasPassport:      true,
		PassportNumber:   "C1234567",
		HasExperience:    false,
		Consent:          true,
	}
}
