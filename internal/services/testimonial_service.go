// internal/services/testimonial_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type TestimonialService struct {
	db *gorm.DB
}

type CreateTestimonialRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Country  string `json:"country,omitempty" validate:"max=100"`
	Job      string `json:"job,omitempty" validate:"max=150"`
	Quote    string `json:"quote" validate:"required"`
	PhotoURL string `json:"photo_url,omitempty" validate:"omitempty,url,max=500"`
	VideoURL string `json:"video_url,omitempty" validate:"omitempty,url,max=500"`
	Rating   int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type UpdateTestimonialRequest struct {
	Name     *string               `json:"name,omitempty" validate:"omitempty,max=100"`
	Country  *string               `json:"country,omitempty" validate:"omitempty,max=100"`
	Job      *string               `json:"job,omitempty" validate:"omitempty,max=150"`
	Quote    *string               `json:"quote,omitempty"`
	PhotoURL *string               `json:"photo_url,omitempty" validate:"omitempty,url,max=500"`
	VideoURL *string               `json:"video_url,omitempty" validate:"omitempty,url,max=500"`
	Rating   *int                  `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Status   *models.ContentStatus `json:"status,omitempty"`
}

type TestimonialSearchParams struct {
	utils.PaginationParams
	Status *models.ContentStatus `json:"status,omitempty"`
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{db: db}
}

func (s *TestimonialService) Create(adminID uuid.UUID, req *CreateTestimonialRequest) (*models.Testimonial, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := &models.Testimonial{
		Name:      req.Name,
		Country:   req.Country,
		Job:       req.Job,
		Quote:     req.Quote,
		PhotoURL:  req.PhotoURL,
		VideoURL:  req.VideoURL,
		Rating:    rating,
		Status:    models.ContentStatusDraft,
		CreatedBy: adminID,
	}

	if err := s.db.Create(testimonial).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	return testimonial, nil
}

func (s *TestimonialService) Update(id uuid.UUID, req *UpdateTestimonialRequest) (*models.Testimonial, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	testimonial, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		testimonial.Name = *req.Name
	}
	if req.Country != nil {
		testimonial.Country = *req.Country
	}
	if req.Job != nil {
		testimonial.Job = *req.Job
	}
	if req.Quote != nil {
		testimonial.Quote = *req.Quote
	}
	if req.PhotoURL != nil {
		testimonial.PhotoURL = *req.PhotoURL
	}
	if req.VideoURL != nil {
		testimonial.VideoURL = *req.VideoURL
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("status %q: %w", *req.Status, ErrInvalidStatus)
		}
		testimonial.Status = *req.Status
	}

	if err := s.db.Save(testimonial).Error; err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	return testimonial, nil
}

func (s *TestimonialService) Get(id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := s.db.First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("testimonial: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &testimonial, nil
}

func (s *TestimonialService) Search(params TestimonialSearchParams, publicOnly bool) ([]models.Testimonial, int64, error) {
	query := s.db.Model(&models.Testimonial{})

	if publicOnly {
		query = query.Where("status = ?", models.ContentStatusPublished)
	} else if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(quote) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count testimonials: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "rating"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var testimonials []models.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch testimonials: %w", err)
	}

	return testimonials, total, nil
}

func (s *TestimonialService) Delete(id uuid.UUID) error {
	testimonial, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(testimonial).Error; err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	return nil
}
