// internal/services/blog_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type BlogService struct {
	db *gorm.DB
}

type CreatePostRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=255"`
	Excerpt       string   `json:"excerpt,omitempty" validate:"max=500"`
	Content       string   `json:"content" validate:"required"`
	CoverImageURL string   `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
	Tags          []string `json:"tags,omitempty" validate:"max=10,dive,max=50"`
}

type UpdatePostRequest struct {
	Title         *string               `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Excerpt       *string               `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content       *string               `json:"content,omitempty"`
	CoverImageURL *string               `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
	Tags          []string              `json:"tags,omitempty" validate:"max=10,dive,max=50"`
	Status        *models.ContentStatus `json:"status,omitempty"`
}

type PostSearchParams struct {
	utils.PaginationParams
	Status *models.ContentStatus `json:"status,omitempty"`
	Tag    string                `json:"tag,omitempty"`
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

func (s *BlogService) Create(authorID uuid.UUID, req *CreatePostRequest) (*models.BlogPost, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	post := &models.BlogPost{
		Title:         req.Title,
		Slug:          utils.Slugify(req.Title),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Tags:          pq.StringArray(req.Tags),
		Status:        models.ContentStatusDraft,
		AuthorID:      authorID,
	}

	if err := s.ensureUniqueSlug(post); err != nil {
		return nil, err
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	return post, nil
}

func (s *BlogService) Update(id uuid.UUID, req *UpdatePostRequest) (*models.BlogPost, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
		post.Slug = utils.Slugify(*req.Title)
		if err := s.ensureUniqueSlug(post); err != nil {
			return nil, err
		}
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CoverImageURL != nil {
		post.CoverImageURL = *req.CoverImageURL
	}
	if req.Tags != nil {
		post.Tags = pq.StringArray(req.Tags)
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("status %q: %w", *req.Status, ErrInvalidStatus)
		}
		// First publish stamps PublishedAt; republishing keeps the original date.
		if *req.Status == models.ContentStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = *req.Status
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	return post, nil
}

func (s *BlogService) Get(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &post, nil
}

func (s *BlogService) GetPublishedBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.db.Where("slug = ? AND status = ?", slug, models.ContentStatusPublished).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &post, nil
}

func (s *BlogService) Search(params PostSearchParams, publicOnly bool) ([]models.BlogPost, int64, error) {
	query := s.db.Model(&models.BlogPost{})

	if publicOnly {
		query = query.Where("status = ?", models.ContentStatusPublished)
	} else if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Tag != "" {
		query = query.Where("? = ANY(tags)", params.Tag)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "published_at", "title"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var posts []models.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch blog posts: %w", err)
	}

	return posts, total, nil
}

func (s *BlogService) Delete(id uuid.UUID) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(post).Error; err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	return nil
}

func (s *BlogService) ensureUniqueSlug(post *models.BlogPost) error {
	base := post.Slug
	for i := 2; ; i++ {
		var count int64
		if err := s.db.Model(&models.BlogPost{}).
			Where("slug = ? AND id != ?", post.Slug, post.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if count == 0 {
			return nil
		}
		post.Slug = fmt.Sprintf("%s-%d", base, i)
	}
}
