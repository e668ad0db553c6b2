// internal/handlers/job.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/globalkerja/agency-backend/internal/i18n"
	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

func jobSearchParams(c *gin.Context) services.JobSearchParams {
	params := services.JobSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Country:          c.Query("country"),
		Category:         c.Query("category"),
	}

	if status := c.Query("status"); status != "" {
		cStatus := models.ContentStatus(status)
		params.Status = &cStatus
	}

	return params
}

// GET /jobs
func (h *JobHandler) ListPublished(c *gin.Context) {
	params := jobSearchParams(c)

	jobs, total, err := h.jobService.Search(params, true)
	if err != nil {
		handleServiceError(c, err, "job")
		return
	}

	result := utils.CreatePaginationResult(jobs, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /jobs/:slug
func (h *JobHandler) GetPublished(c *gin.Context) {
	job, err := h.jobService.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		handleServiceError(c, err, "job")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"job": job,
	})
}

// GET /admin/jobs
func (h *JobHandler) List(c *gin.Context) {
	params := jobSearchParams(c)

	jobs, total, err := h.jobService.Search(params, false)
	if err != nil {
		handleServiceError(c, err, "job")
		return
	}

	result := utils.CreatePaginationResult(jobs, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /admin/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid job ID", nil)
		return
	}

	job, err := h.jobService.Get(id)
	if err != nil {
		handleServiceError(c, err, "job")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"job": job,
	})
}

// POST /admin/jobs
func (h *JobHandler) Create(c *gin.Context) {
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

	var req services.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	job, err := h.jobService.Create(adminID, &req)
	if err != nil {
		handleServiceError(c, err, "job")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyJobCreated),
		"job":     job,
	})
}

// PUT /admin/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid job ID", nil)
		return
	}

	var req services.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	job, err := h.jobService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err, "job")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyJobUpdated),
		"job":     job,
	})
}

// DELETE /admin/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid job ID", nil)
		return
	}

	if err := h.jobService.Delete(id); err != nil {
		handleServiceError(c, err, "job")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyJobDeleted),
	})
}
