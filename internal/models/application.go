// internal/models/application.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application is a candidate's submission for overseas employment assistance.
// Status changes go through ApplicationService.Transition only, which appends
// a StatusHistory row in the same transaction.
type Application struct {
	BaseModel
	FullName         string `json:"full_name" gorm:"size:255;not null"`
	Email            string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone            string `json:"phone" gorm:"size:30;not null"`
	BirthDate        string `json:"birth_date" gorm:"size:20"`
	Address          string `json:"address" gorm:"type:text"`
	Education        string `json:"education" gorm:"size:100"`
	PreferredCountry string `json:"preferred_country" gorm:"size:100"`
	PreferredJob     string `json:"preferred_job" gorm:"size:150"`

	HasPassport    bool   `json:"has_passport" gorm:"default:false"`
	PassportNumber string `json:"passport_number,omitempty" gorm:"size:50"`
	HasExperience  bool   `json:"has_experience" gorm:"default:false"`
	Experience     string `json:"experience,omitempty" gorm:"type:text"`
	Consent        bool   `json:"consent" gorm:"not null"`

	// Document references returned by the storage collaborator; opaque URLs.
	ResumeURL      string `json:"resume_url,omitempty" gorm:"size:500"`
	PhotoURL       string `json:"photo_url,omitempty" gorm:"size:500"`
	PassportDocURL string `json:"passport_doc_url,omitempty" gorm:"size:500"`

	JobID *uuid.UUID `json:"job_id" gorm:"type:uuid;index"`

	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	ReviewNotes string            `json:"review_notes,omitempty" gorm:"type:text"`
	ReviewedBy  *uuid.UUID        `json:"reviewed_by" gorm:"type:uuid"`

	// Relationships
	Job           *JobVacancy     `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Reviewer      *AdminUser      `json:"reviewer,omitempty" gorm:"foreignKey:ReviewedBy"`
	StatusHistory []StatusHistory `json:"status_history,omitempty" gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

// StatusHistory is the append-only audit ledger for application status
// changes. Rows are never updated; they are removed only when the owning
// application is deleted.
type StatusHistory struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key"`
	ApplicationID uuid.UUID         `json:"application_id" gorm:"type:uuid;not null;index"`
	Status        ApplicationStatus `json:"status" gorm:"type:varchar(20);not null"`
	ChangedBy     *uuid.UUID        `json:"changed_by" gorm:"type:uuid"` // nil for system entries
	Notes         string            `json:"notes,omitempty" gorm:"type:text"`
	ChangedAt     time.Time         `json:"changed_at" gorm:"not null;index"`

	// Relationships
	Admin *AdminUser `json:"admin,omitempty" gorm:"foreignKey:ChangedBy"`
}

func (h *StatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now()
	}
	return nil
}
