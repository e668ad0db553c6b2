// internal/services/job_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type JobService struct {
	db *gorm.DB
}

type CreateJobRequest struct {
	Title        string     `json:"title" validate:"required,min=3,max=255"`
	Country      string     `json:"country" validate:"required,max=100"`
	Location     string     `json:"location,omitempty" validate:"max=150"`
	Category     string     `json:"category,omitempty" validate:"max=100"`
	Description  string     `json:"description" validate:"required"`
	Requirements string     `json:"requirements,omitempty"`
	Salary       string     `json:"salary,omitempty" validate:"max=100"`
	Positions    int        `json:"positions,omitempty" validate:"omitempty,min=1"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title        *string               `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Country      *string               `json:"country,omitempty" validate:"omitempty,max=100"`
	Location     *string               `json:"location,omitempty" validate:"omitempty,max=150"`
	Category     *string               `json:"category,omitempty" validate:"omitempty,max=100"`
	Description  *string               `json:"description,omitempty"`
	Requirements *string               `json:"requirements,omitempty"`
	Salary       *string               `json:"salary,omitempty" validate:"omitempty,max=100"`
	Positions    *int                  `json:"positions,omitempty" validate:"omitempty,min=1"`
	Deadline     *time.Time            `json:"deadline,omitempty"`
	Status       *models.ContentStatus `json:"status,omitempty"`
}

type JobSearchParams struct {
	utils.PaginationParams
	Status   *models.ContentStatus `json:"status,omitempty"`
	Country  string                `json:"country,omitempty"`
	Category string                `json:"category,omitempty"`
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(adminID uuid.UUID, req *CreateJobRequest) (*models.JobVacancy, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	positions := req.Positions
	if positions == 0 {
		positions = 1
	}

	job := &models.JobVacancy{
		Title:        req.Title,
		Slug:         utils.Slugify(req.Title),
		Country:      req.Country,
		Location:     req.Location,
		Category:     req.Category,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Positions:    positions,
		Deadline:     req.Deadline,
		Status:       models.ContentStatusDraft,
		CreatedBy:    adminID,
	}

	if err := s.ensureUniqueSlug(job); err != nil {
		return nil, err
	}

	if err := s.db.Create(job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job vacancy: %w", err)
	}

	return job, nil
}

func (s *JobService) Update(id uuid.UUID, req *UpdateJobRequest) (*models.JobVacancy, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
		job.Slug = utils.Slugify(*req.Title)
		if err := s.ensureUniqueSlug(job); err != nil {
			return nil, err
		}
	}
	if req.Country != nil {
		job.Country = *req.Country
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Positions != nil {
		job.Positions = *req.Positions
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("status %q: %w", *req.Status, ErrInvalidStatus)
		}
		job.Status = *req.Status
	}

	if err := s.db.Save(job).Error; err != nil {
		return nil, fmt.Errorf("failed to update job vacancy: %w", err)
	}

	return job, nil
}

func (s *JobService) Get(id uuid.UUID) (*models.JobVacancy, error) {
	var job models.JobVacancy
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job vacancy: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &job, nil
}

// GetPublishedBySlug serves the public job detail page; drafts and archived
// vacancies are invisible here.
func (s *JobService) GetPublishedBySlug(slug string) (*models.JobVacancy, error) {
	var job models.JobVacancy
	err := s.db.Where("slug = ? AND status = ?", slug, models.ContentStatusPublished).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job vacancy: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &job, nil
}

func (s *JobService) Search(params JobSearchParams, publicOnly bool) ([]models.JobVacancy, int64, error) {
	query := s.db.Model(&models.JobVacancy{})

	if publicOnly {
		query = query.Where("status = ?", models.ContentStatusPublished)
	} else if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Country != "" {
		query = query.Where("country = ?", params.Country)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count job vacancies: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "country", "deadline"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var jobs []models.JobVacancy
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch job vacancies: %w", err)
	}

	return jobs, total, nil
}

func (s *JobService) Delete(id uuid.UUID) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}

	// Applications referencing this vacancy stay as general applications.
	if err := s.db.Model(&models.Application{}).Where("job_id = ?", id).Update("job_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach applications: %w", err)
	}

	if err := s.db.Delete(job).Error; err != nil {
		return fmt.Errorf("failed to delete job vacancy: %w", err)
	}

	return nil
}

func (s *JobService) ensureUniqueSlug(job *models.JobVacancy) error {
	base := job.Slug
	for i := 2; ; i++ {
		var count int64
		if err := s.db.Model(&models.JobVacancy{}).
			Where("slug = ? AND id != ?", job.Slug, job.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if count == 0 {
			return nil
		}
		job.Slug = fmt.Sprintf("%s-%d", base, i)
	}
}
