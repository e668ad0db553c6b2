// internal/handlers/application.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/globalkerja/agency-backend/internal/i18n"
	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// POST /applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	application, err := h.applicationService.Submit(&req)
	if err != nil {
		handleServiceError(c, err, "application")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":      application.ID,
		"email":   application.Email,
		"message": i18n.T(lang, i18n.KeyApplicationSubmitted),
	})
}

// GET /admin/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.ApplicationSearchParams{
		PaginationParams: params,
	}

	// Parse filters
	if status := c.Query("status"); status != "" {
		appStatus := models.ApplicationStatus(status)
		searchParams.Status = &appStatus
	}

	if jobIDStr := c.Query("job_id"); jobIDStr != "" {
		if jobID, err := uuid.Parse(jobIDStr); err == nil {
			searchParams.JobID = &jobID
		}
	}

	applications, total, err := h.applicationService.Search(searchParams)
	if err != nil {
		handleServiceError(c, err, "application")
		return
	}

	result := utils.CreatePaginationResult(applications, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /admin/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID", nil)
		return
	}

	application, err := h.applicationService.Get(id)
	if err != nil {
		handleServiceError(c, err, "application")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"application": application,
	})
}

// GET /admin/applications/:id/history
func (h *ApplicationHandler) GetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID", nil)
		return
	}

	history, err := h.applicationService.GetHistory(id)
	if err != nil {
		handleServiceError(c, err, "application")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"history": history,
	})
}

// PUT /admin/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID", nil)
		return
	}

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

	var req services.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	application, err := h.applicationService.Transition(id, req.Status, adminID, req.Notes)
	if err != nil {
		handleServiceError(c, err, "application")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyApplicationStatusUpdated),
		"application": application,
	})
}

// DELETE /admin/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID", nil)
		return
	}

	if err := h.applicationService.Delete(id); err != nil {
		handleServiceError(c, err, "application")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyApplicationDeleted),
	})
}
