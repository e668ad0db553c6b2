// internal/handlers/testimonial.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/globalkerja/agency-backend/internal/i18n"
	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

func NewTestimonialHandler(testimonialService *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
	}
}

func testimonialSearchParams(c *gin.Context) services.TestimonialSearchParams {
	params := services.TestimonialSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if status := c.Query("status"); status != "" {
		cStatus := models.ContentStatus(status)
		params.Status = &cStatus
	}

	return params
}

// GET /testimonials
func (h *TestimonialHandler) ListPublished(c *gin.Context) {
	params := testimonialSearchParams(c)

	testimonials, total, err := h.testimonialService.Search(params, true)
	if err != nil {
		handleServiceError(c, err, "testimonial")
		return
	}

	result := utils.CreatePaginationResult(testimonials, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /admin/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	params := testimonialSearchParams(c)

	testimonials, total, err := h.testimonialService.Search(params, false)
	if err != nil {
		handleServiceError(c, err, "testimonial")
		return
	}

	result := utils.CreatePaginationResult(testimonials, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// POST /admin/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	adminIDStr, exists := utils.GetAdminIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	testimonial, err := h.testimonialService.Create(adminID, &req)
	if err != nil {
		handleServiceError(c, err, "testimonial")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyTestimonialCreated),
		"testimonial": testimonial,
	})
}

// PUT /admin/testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid testimonial ID", nil)
		return
	}

	var req services.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	testimonial, err := h.testimonialService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err, "testimonial")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyTestimonialUpdated),
		"testimonial": testimonial,
	})
}

// DELETE /admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid testimonial ID", nil)
		return
	}

	if err := h.testimonialService.Delete(id); err != nil {
		handleServiceError(c, err, "testimonial")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyTestimonialDeleted),
	})
}
