// internal/services/application_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalkerja/agency-backend/internal/models"
)

func TestApplicationService_Submit(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)

	app, err := service.Submit(validSubmission())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, app.ID)

	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, "siti@example.com", app.Email)

	var history []models.StatusHistory
	require.NoError(t, db.Where("application_id = ?", app.ID).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, models.ApplicationStatusPending, history[0].Status)
	assert.Nil(t, history[0].ChangedBy)
	assert.Equal(t, "submitted via public form", history[0].Notes)
}

func TestApplicationService_Submit_NormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)

	req := validSubmission()
	req.Email = "  Siti@Example.COM "

	app, err := service.Submit(req)
	require.NoError(t, err)
	assert.Equal(t, "siti@example.com", app.Email)

	// The canonical form is what the duplicate check sees.
	_, err = service.Submit(validSubmission())
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestApplicationService_Submit_ValidationFailures(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)

	tests := []struct {
		name   string
		mutate func(*SubmitApplicationRequest)
	}{
		{"missing consent", func(r *SubmitApplicationRequest) { r.Consent = false }},
		{"malformed email", func(r *SubmitApplicationRequest) { r.Email = "not-an-email" }},
		{"passport claimed without number", func(r *SubmitApplicationRequest) {
			r.HasPassport = true
			r.PassportNumber = ""
		}},
		{"experience claimed without details", func(r *SubmitApplicationRequest) {
			r.HasExperience = true
			r.Experience = ""
		}},
		{"missing full name", func(r *SubmitApplicationRequest) { r.FullName = "" }},
		{"bad phone", func(r *SubmitApplicationRequest) { r.Phone = "call me" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmission()
			tt.mutate(req)

			_, err := service.Submit(req)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs))
		})
	}

	// None of the rejected submissions should have left rows behind.
	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplicationService_Submit_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)

	_, err := service.Submit(validSubmission())
	require.NoError(t, err)

	// Same address with different casing is still a duplicate.
	req := validSubmission()
	req.Email = "SITI@example.com"

	_, err = service.Submit(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))

	var apps int64
	require.NoError(t, db.Model(&models.Application{}).Count(&apps).Error)
	assert.Equal(t, int64(1), apps)

	var histories int64
	require.NoError(t, db.Model(&models.StatusHistory{}).Count(&histories).Error)
	assert.Equal(t, int64(1), histories)
}

func TestApplicationService_Submit_JobReference(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	job := &models.JobVacancy{
		Title:       "Factory Operator",
		Slug:        "factory-operator",
		Country:     "Taiwan",
		Description: "Operate production line machinery",
		Positions:   3,
		Status:      models.ContentStatusPublished,
		CreatedBy:   admin.ID,
	}
	require.NoError(t, db.Create(job).Error)

	req := validSubmission()
	req.JobID = &job.ID

	app, err := service.Submit(req)
	require.NoError(t, err)
	require.NotNil(t, app.JobID)
	assert.Equal(t, job.ID, *app.JobID)

	// Pointing at a vacancy that does not exist is rejected outright.
	missing := uuid.New()
	req = validSubmission()
	req.Email = "other@example.com"
	req.JobID = &missing

	_, err = service.Submit(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestApplicationService_Transition(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	app, err := service.Submit(validSubmission())
	require.NoError(t, err)

	updated, err := service.Transition(app.ID, models.ApplicationStatusReviewing, admin.ID, "documents look complete")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusReviewing, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, admin.ID, *updated.ReviewedBy)
	assert.Equal(t, "documents look complete", updated.ReviewNotes)

	history, err := service.GetHistory(app.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.ApplicationStatusPending, history[0].Status)
	assert.Equal(t, models.ApplicationStatusReviewing, history[1].Status)
	require.NotNil(t, history[1].ChangedBy)
	assert.Equal(t, admin.ID, *history[1].ChangedBy)
}

func TestApplicationService_Transition_AnyStatusToAnyStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	app, err := service.Submit(validSubmission())
	require.NoError(t, err)

	// Decisions are reversible: approve, reject, then approve again.
	steps := []models.ApplicationStatus{
		models.ApplicationStatusApproved,
		models.ApplicationStatusRejected,
		models.ApplicationStatusApproved,
	}
	for _, status := range steps {
		_, err := service.Transition(app.ID, status, admin.ID, "")
		require.NoError(t, err)
	}

	history, err := service.GetHistory(app.ID)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestApplicationService_Transition_SameStatusStillRecorded(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	app, err := service.Submit(validSubmission())
	require.NoError(t, err)

	_, err = service.Transition(app.ID, models.ApplicationStatusPending, admin.ID, "re-checked")
	require.NoError(t, err)

	history, err := service.GetHistory(app.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestApplicationService_Transition_InvalidStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	app, err := service.Submit(validSubmission())
	require.NoError(t, err)

	_, err = service.Transition(app.ID, models.ApplicationStatus("ON_HOLD"), admin.ID, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))

	// The rejected transition must not have touched the history.
	history, err := service.GetHistory(app.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestApplicationService_Transition_NotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	_, err := service.Transition(uuid.New(), models.ApplicationStatusApproved, admin.ID, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestApplicationService_Delete(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	app, err := service.Submit(validSubmission())
	require.NoError(t, err)
	_, err = service.Transition(app.ID, models.ApplicationStatusApproved, admin.ID, "")
	require.NoError(t, err)

	require.NoError(t, service.Delete(app.ID))

	_, err = service.Get(app.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	var histories int64
	require.NoError(t, db.Model(&models.StatusHistory{}).Where("application_id = ?", app.ID).Count(&histories).Error)
	assert.Zero(t, histories)

	_, err = service.GetHistory(app.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)

	err := service.Delete(uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestApplicationService_Search(t *testing.T) {
	db := newTestDB(t)
	service := NewApplicationService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	first, err := service.Submit(validSubmission())
	require.NoError(t, err)

	second := validSubmission()
	second.FullName = "Budi Santoso"
	second.Email = "budi@example.com"
	_, err = service.Submit(second)
	require.NoError(t, err)

	_, err = service.Transition(first.ID, models.ApplicationStatusApproved, admin.ID, "")
	require.NoError(t, err)

	approved := models.ApplicationStatusApproved
	results, total, err := service.Search(ApplicationSearchParams{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, first.ID, results[0].ID)

	params := ApplicationSearchParams{}
	params.Search = "budi"
	results, total, err = service.Search(params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "budi@example.com", results[0].Email)
}
