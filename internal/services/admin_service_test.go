// internal/services/admin_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalkerja/agency-backend/internal/models"
)

func TestAdminService_GetDashboardStats(t *testing.T) {
	db := newTestDB(t)
	service := NewAdminService(db)
	applicationService := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	first, err := applicationService.Submit(validSubmission())
	require.NoError(t, err)

	second := validSubmission()
	second.Email = "budi@example.com"
	_, err = applicationService.Submit(second)
	require.NoError(t, err)

	_, err = applicationService.Transition(first.ID, models.ApplicationStatusApproved, admin.ID, "")
	require.NoError(t, err)

	stats, err := service.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalApplications)
	assert.Equal(t, int64(1), stats.PendingApplications)
	assert.Equal(t, int64(1), stats.ApprovedApplications)
	assert.Equal(t, int64(2), stats.NewThisMonth)
}

func TestAdminService_CreateAdmin(t *testing.T) {
	db := newTestDB(t)
	service := NewAdminService(db)

	admin, err := service.CreateAdmin(&CreateAdminRequest{
		Name:     "New Admin",
		Email:    "New.Admin@Example.com",
		Password: "Adm1n-secret!",
		Role:     models.AdminRoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "new.admin@example.com", admin.Email)
	assert.True(t, admin.IsActive)
	assert.NoError(t, admin.CheckPassword("Adm1n-secret!"))
}

func TestAdminService_CreateAdmin_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	service := NewAdminService(db)
	createTestAdmin(t, db, models.AdminRoleAdmin)

	_, err := service.CreateAdmin(&CreateAdminRequest{
		Name:     "Clone",
		Email:    "admin@example.com",
		Password: "Adm1n-secret!",
		Role:     models.AdminRoleAdmin,
	})
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestAdminService_CreateAdmin_WeakPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewAdminService(db)

	_, err := service.CreateAdmin(&CreateAdminRequest{
		Name:     "New Admin",
		Email:    "new@example.com",
		Password: "password",
		Role:     models.AdminRoleAdmin,
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestAdminService_UpdateAdmin_SelfDeactivationBlocked(t *testing.T) {
	db := newTestDB(t)
	service := NewAdminService(db)
	admin := createTestAdmin(t, db, models.AdminRoleSuperAdmin)

	inactive := false
	_, err := service.UpdateAdmin(admin.ID, admin.ID, &UpdateAdminRequest{IsActive: &inactive})
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestAdminService_UpdateAdmin_DeactivateOther(t *testing.T) {
	db := newTestDB(t)
	service := NewAdminService(db)
	actor := createTestAdmin(t, db, models.AdminRoleSuperAdmin)

	other, err := service.CreateAdmin(&CreateAdminRequest{
		Name:     "Other Admin",
		Email:    "other@example.com",
		Password: "Adm1n-secret!",
		Role:     models.AdminRoleAdmin,
	})
	require.NoError(t, err)

	inactive := false
	updated, err := service.UpdateAdmin(other.ID, actor.ID, &UpdateAdminRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}
