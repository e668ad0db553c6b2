// internal/models/content.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobVacancy is an open position the agency recruits for. Public listings
// only ever see PUBLISHED vacancies.
type JobVacancy struct {
	BaseModel
	Title        string        `json:"title" gorm:"size:255;not null"`
	Slug         string        `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Country      string        `json:"country" gorm:"size:100;index"`
	Location     string        `json:"location" gorm:"size:150"`
	Category     string        `json:"category" gorm:"size:100;index"`
	Description  string        `json:"description" gorm:"type:text"`
	Requirements string        `json:"requirements" gorm:"type:text"`
	Salary       string        `json:"salary" gorm:"size:100"`
	Positions    int           `json:"positions" gorm:"default:1"`
	Deadline     *time.Time    `json:"deadline"`
	Status       ContentStatus `json:"status" gorm:"type:varchar(20);default:'DRAFT';index"`
	CreatedBy    uuid.UUID     `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Author       AdminUser     `json:"author,omitempty" gorm:"foreignKey:CreatedBy"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:JobID"`
}

type BlogPost struct {
	BaseModel
	Title         string         `json:"title" gorm:"size:255;not null"`
	Slug          string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Excerpt       string         `json:"excerpt" gorm:"size:500"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	CoverImageURL string         `json:"cover_image_url,omitempty" gorm:"size:500"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`
	Status        ContentStatus  `json:"status" gorm:"type:varchar(20);default:'DRAFT';index"`
	PublishedAt   *time.Time     `json:"published_at"`
	AuthorID      uuid.UUID      `json:"author_id" gorm:"type:uuid;not null"`

	// Relationships
	Author AdminUser `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

type Testimonial struct {
	BaseModel
	Name      string        `json:"name" gorm:"size:100;not null"`
	Country   string        `json:"country" gorm:"size:100"`
	Job       string        `json:"job" gorm:"size:150"`
	Quote     string        `json:"quote" gorm:"type:text;not null"`
	PhotoURL  string        `json:"photo_url,omitempty" gorm:"size:500"`
	VideoURL  string        `json:"video_url,omitempty" gorm:"size:500"`
	Rating    int           `json:"rating" gorm:"default:5"`
	Status    ContentStatus `json:"status" gorm:"type:varchar(20);default:'DRAFT';index"`
	CreatedBy uuid.UUID     `json:"created_by" gorm:"type:uuid;not null"`
}
