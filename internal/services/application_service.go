// internal/services/application_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/globalkerja/agency-backend/internal/database"
	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/utils"
)

const submissionNote = "submitted via public form"

// ApplicationService owns the candidate application workflow: public
// submission, admin status transitions with audit history, and deletion.
// It is the only code path that writes applications.status; every write
// appends a StatusHistory row in the same transaction.
type ApplicationService struct {
	db *gorm.DB
}

type SubmitApplicationRequest struct {
	FullName         string     `json:"full_name" validate:"required,min=3,max=255"`
	Email            string     `json:"email" validate:"required,email"`
	Phone            string     `json:"phone" validate:"required,phone"`
	BirthDate        string     `json:"birth_date,omitempty" validate:"max=20"`
	Address          string     `json:"address,omitempty"`
	Education        string     `json:"education,omitempty" validate:"max=100"`
	PreferredCountry string     `json:"preferred_country,omitempty" validate:"max=100"`
	PreferredJob     string     `json:"preferred_job,omitempty" validate:"max=150"`
	JobID            *uuid.UUID `json:"job_id,omitempty"`
	HasPassport      bool       `json:"has_passport"`
	PassportNumber   string     `json:"passport_number,omitempty" validate:"required_if=HasPassport true,max=50"`
	HasExperience    bool       `json:"has_experience"`
	Experience       string     `json:"experience,omitempty" validate:"required_if=HasExperience true"`
	ResumeURL        string     `json:"resume_url,omitempty" validate:"omitempty,url,max=500"`
	PhotoURL         string     `json:"photo_url,omitempty" validate:"omitempty,url,max=500"`
	PassportDocURL   string     `json:"passport_doc_url,omitempty" validate:"omitempty,url,max=500"`
	Consent          bool       `json:"consent" validate:"eq=true"`
}

type TransitionRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
	Notes  string                   `json:"notes,omitempty"`
}

type ApplicationSearchParams struct {
	utils.PaginationParams
	Status *models.ApplicationStatus `json:"status,omitempty"`
	JobID  *uuid.UUID                `json:"job_id,omitempty"`
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Submit validates a public submission and creates the application together
// with its initial PENDING history entry. The two rows are written in a
// single transaction: either both exist afterwards or neither does.
func (s *ApplicationService) Submit(req *SubmitApplicationRequest) (*models.Application, error) {
	// Normalize before validation so a padded or mixed-case address passes
	// the email check and the duplicate lookup sees the canonical form.
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// A supplied job reference must point at an existing vacancy. Omitting
	// it entirely is fine: the candidate becomes a general application.
	if req.JobID != nil {
		var job models.JobVacancy
		if err := s.db.First(&job, "id = ?", *req.JobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("job vacancy: %w", ErrNotFound)
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	email := req.Email

	var existing int64
	if err := s.db.Model(&models.Application{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("application with email %s: %w", email, ErrDuplicate)
	}

	application := &models.Application{
		FullName:         strings.TrimSpace(req.FullName),
		Email:            email,
		Phone:            strings.TrimSpace(req.Phone),
		BirthDate:        req.BirthDate,
		Address:          req.Address,
		Education:        req.Education,
		PreferredCountry: req.PreferredCountry,
		PreferredJob:     req.PreferredJob,
		JobID:            req.JobID,
		HasPassport:      req.HasPassport,
		PassportNumber:   req.PassportNumber,
		HasExperience:    req.HasExperience,
		Experience:       req.Experience,
		ResumeURL:        req.ResumeURL,
		PhotoURL:         req.PhotoURL,
		PassportDocURL:   req.PassportDocURL,
		Consent:          req.Consent,
		Status:           models.ApplicationStatusPending,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("application with email %s: %w", email, ErrDuplicate)
			}
			return fmt.Errorf("failed to create application: %w", err)
		}

		history := &models.StatusHistory{
			ApplicationID: application.ID,
			Status:        models.ApplicationStatusPending,
			ChangedBy:     nil, // system-originated entry
			Notes:         submissionNote,
			ChangedAt:     time.Now(),
		}
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to create status history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return application, nil
}

// Transition moves an application to newStatus and appends the audit entry.
// The state machine is intentionally unrestricted: any status may move to
// any other, including itself, and every call is recorded. Review decisions
// are reversible by design.
func (s *ApplicationService) Transition(id uuid.UUID, newStatus models.ApplicationStatus, adminID uuid.UUID, notes string) (*models.Application, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("status %q: %w", newStatus, ErrInvalidStatus)
	}

	var application models.Application
	if err := s.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":      newStatus,
			"reviewed_by": adminID,
			"updated_at":  time.Now(),
		}
		if notes != "" {
			updates["review_notes"] = notes
		}

		if err := tx.Model(&application).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		history := &models.StatusHistory{
			ApplicationID: application.ID,
			Status:        newStatus,
			ChangedBy:     &adminID,
			Notes:         notes,
			ChangedAt:     time.Now(),
		}
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to append status history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Job").Preload("Reviewer").First(&application, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &application, nil
}

// Delete permanently removes an application and its full history. No
// tombstone is kept.
func (s *ApplicationService) Delete(id uuid.UUID) error {
	var application models.Application
	if err := s.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("application: %w", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", id).Delete(&models.StatusHistory{}).Error; err != nil {
			return fmt.Errorf("failed to delete status history: %w", err)
		}
		if err := tx.Delete(&application).Error; err != nil {
			return fmt.Errorf("failed to delete application: %w", err)
		}
		return nil
	})
}

func (s *ApplicationService) Get(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := s.db.Preload("Job").Preload("Reviewer").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		}).
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &application, nil
}

func (s *ApplicationService) GetHistory(id uuid.UUID) ([]models.StatusHistory, error) {
	var count int64
	if err := s.db.Model(&models.Application{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("application: %w", ErrNotFound)
	}

	var history []models.StatusHistory
	if err := s.db.Where("application_id = ?", id).Order("changed_at ASC").Find(&history).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return history, nil
}

func (s *ApplicationService) Search(params ApplicationSearchParams) ([]models.Application, int64, error) {
	query := s.db.Model(&models.Application{}).Preload("Job")

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.JobID != nil {
		query = query.Where("job_id = ?", *params.JobID)
	}

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			pattern, pattern, "%"+params.Search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "status", "full_name"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch applications: %w", err)
	}

	return applications, total, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
