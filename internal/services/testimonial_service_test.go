// internal/services/testimonial_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalkerja/agency-backend/internal/models"
)

func TestTestimonialService_Create(t *testing.T) {
	db := newTestDB(t)
	service := NewTestimonialService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	testimonial, err := service.Create(admin.ID, &CreateTestimonialRequest{
		Name:  "Ahmad",
		Quote: "The agency handled everything from paperwork to placement.",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, testimonial.Rating)
	assert.Equal(t, models.ContentStatusDraft, testimonial.Status)
}

func TestTestimonialService_PublicListOnlyPublished(t *testing.T) {
	db := newTestDB(t)
	service := NewTestimonialService(db)
	admin := createTestAdmin(t, db, models.AdminRoleAdmin)

	_, err := service.Create(admin.ID, &CreateTestimonialRequest{
		Name:  "Draft Person",
		Quote: "Still in review.",
	})
	require.NoError(t, err)

	published, err := service.Create(admin.ID, &CreateTestimonialRequest{
		Name:  "Ahmad",
		Quote: "Great experience.",
	})
	require.NoError(t, err)

	status := models.ContentStatusPublished
	_, err = service.Update(published.ID, &UpdateTestimonialRequest{Status: &status})
	require.NoError(t, err)

	results, total, err := service.Search(TestimonialSearchParams{}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Ahmad", results[0].Name)
}
