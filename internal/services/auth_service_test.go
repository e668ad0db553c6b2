// internal/services/auth_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalkerja/agency-backend/internal/config"
	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/utils"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.SessionTTL = 8
	return cfg
}

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	service := NewAuthService(db, cfg)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	result, err := service.Login(&LoginRequest{
		Email:    "Admin@Example.com",
		Password: "Sup3r-secret!",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, result.Admin.ID)
	assert.NotEmpty(t, result.Token)
	assert.NotNil(t, result.Admin.LastLoginAt)

	claims, err := utils.ValidateSessionToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.AdminID)
	assert.Equal(t, string(models.AdminRoleAdmin), claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db, testConfig())
	createTestAdmin(t, db, models.AdminRoleAdmin)

	_, err := service.Login(&LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db, testConfig())

	_, err := service.Login(&LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db, testConfig())
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)
	require.NoError(t, db.Model(admin).Update("is_active", false).Error)

	_, err := service.Login(&LoginRequest{
		Email:    "admin@example.com",
		Password: "Sup3r-secret!",
	})
	assert.True(t, errors.Is(err, ErrAccountInactive))
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db, testConfig())
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	err := service.ChangePassword(admin.ID, &ChangePasswordRequest{
		CurrentPassword: "Sup3r-secret!",
		NewPassword:     "N3w-secret-pw!",
	})
	require.NoError(t, err)

	var reloaded models.AdminUser
	require.NoError(t, db.First(&reloaded, "id = ?", admin.ID).Error)
	assert.NoError(t, reloaded.CheckPassword("N3w-secret-pw!"))
	assert.Error(t, reloaded.CheckPassword("Sup3r-secret!"))
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db, testConfig())
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	err := service.ChangePassword(admin.ID, &ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "N3w-secret-pw!",
	})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}
