// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type AdminService struct {
	db *gorm.DB
}

type AdminDashboardStats struct {
	TotalApplications     int64 `json:"total_applications"`
	PendingApplications   int64 `json:"pending_applications"`
	ReviewingApplications int64 `json:"reviewing_applications"`
	ApprovedApplications  int64 `json:"approved_applications"`
	RejectedApplications  int64 `json:"rejected_applications"`
	NewThisMonth          int64 `json:"new_this_month"`
	PublishedJobs         int64 `json:"published_jobs"`
	PublishedPosts        int64 `json:"published_posts"`
	PublishedTestimonials int64 `json:"published_testimonials"`
}

type CreateAdminRequest struct {
	Name     string           `json:"name" validate:"required,max=100"`
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,strong_password"`
	Role     models.AdminRole `json:"role" validate:"required"`
}

type UpdateAdminRequest struct {
	Name     *string           `json:"name,omitempty" validate:"omitempty,max=100"`
	Role     *models.AdminRole `json:"role,omitempty"`
	IsActive *bool             `json:"is_active,omitempty"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Dashboard Statistics
func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Application statistics
	s.db.Model(&models.Application{}).Count(&stats.TotalApplications)
	s.db.Model(&models.Application{}).Where("status = ?", models.ApplicationStatusPending).Count(&stats.PendingApplications)
	s.db.Model(&models.Application{}).Where("status = ?", models.ApplicationStatusReviewing).Count(&stats.ReviewingApplications)
	s.db.Model(&models.Application{}).Where("status = ?", models.ApplicationStatusApproved).Count(&stats.ApprovedApplications)
	s.db.Model(&models.Application{}).Where("status = ?", models.ApplicationStatusRejected).Count(&stats.RejectedApplications)
	s.db.Model(&models.Application{}).Where("created_at >= ?", monthStart).Count(&stats.NewThisMonth)

	// Content statistics
	s.db.Model(&models.JobVacancy{}).Where("status = ?", models.ContentStatusPublished).Count(&stats.PublishedJobs)
	s.db.Model(&models.BlogPost{}).Where("status = ?", models.ContentStatusPublished).Count(&stats.PublishedPosts)
	s.db.Model(&models.Testimonial{}).Where("status = ?", models.ContentStatusPublished).Count(&stats.PublishedTestimonials)

	return stats, nil
}

func (s *AdminService) GetRecentApplications(limit int) ([]models.Application, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var applications []models.Application
	err := s.db.Preload("Job").Order("created_at DESC").Limit(limit).Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent applications: %w", err)
	}

	return applications, nil
}

// Admin user management (SUPER_ADMIN only; enforced in middleware).

func (s *AdminService) CreateAdmin(req *CreateAdminRequest) (*models.AdminUser, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Role.Valid() {
		return nil, fmt.Errorf("role %q: %w", req.Role, ErrInvalidStatus)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := s.db.Model(&models.AdminUser{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("admin with email %s: %w", email, ErrDuplicate)
	}

	admin := &models.AdminUser{
		Name:     req.Name,
		Email:    email,
		Role:     req.Role,
		IsActive: true,
	}

	if err := admin.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return admin, nil
}

func (s *AdminService) UpdateAdmin(id uuid.UUID, actorID uuid.UUID, req *UpdateAdminRequest) (*models.AdminUser, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var admin models.AdminUser
	if err := s.db.First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Name != nil {
		admin.Name = *req.Name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("role %q: %w", *req.Role, ErrInvalidStatus)
		}
		admin.Role = *req.Role
	}
	if req.IsActive != nil {
		// An admin cannot lock themselves out.
		if admin.ID == actorID && !*req.IsActive {
			return nil, fmt.Errorf("cannot deactivate own account: %w", ErrForbidden)
		}
		admin.IsActive = *req.IsActive
	}

	if err := s.db.Save(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to update admin user: %w", err)
	}

	return &admin, nil
}

func (s *AdminService) ListAdmins(params utils.PaginationParams) ([]models.AdminUser, int64, error) {
	query := s.db.Model(&models.AdminUser{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count admin users: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "email", "last_login_at"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var admins []models.AdminUser
	if err := query.Find(&admins).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch admin users: %w", err)
	}

	return admins, total, nil
}
