// internal/handlers/blog.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/globalkerja/agency-backend/internal/i18n"
	"github.com/globalkerja/agency-backend/internal/models"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

func postSearchParams(c *gin.Context) services.PostSearchParams {
	params := services.PostSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Tag:              c.Query("tag"),
	}

	if status := c.Query("status"); status != "" {
		cStatus := models.ContentStatus(status)
		params.Status = &cStatus
	}

	return params
}

// GET /blog
func (h *BlogHandler) ListPublished(c *gin.Context) {
	params := postSearchParams(c)

	posts, total, err := h.blogService.Search(params, true)
	if err != nil {
		handleServiceError(c, err, "post")
		return
	}

	result := utils.CreatePaginationResult(posts, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /blog/:slug
func (h *BlogHandler) GetPublished(c *gin.Context) {
	post, err := h.blogService.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		handleServiceError(c, err, "post")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"post": post,
	})
}

// GET /admin/blog
func (h *BlogHandler) List(c *gin.Context) {
	params := postSearchParams(c)

	posts, total, err := h.blogService.Search(params, false)
	if err != nil {
		handleServiceError(c, err, "post")
		return
	}

	result := utils.CreatePaginationResult(posts, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// POST /admin/blog
func (h *BlogHandler) Create(c *gin.Context) {
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

	var req services.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	post, err := h.blogService.Create(adminID, &req)
	if err != nil {
		handleServiceError(c, err, "post")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPostCreated),
		"post":    post,
	})
}

// PUT /admin/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid post ID", nil)
		return
	}

	var req services.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	post, err := h.blogService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err, "post")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPostUpdated),
		"post":    post,
	})
}

// DELETE /admin/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid post ID", nil)
		return
	}

	if err := h.blogService.Delete(id); err != nil {
		handleServiceError(c, err, "post")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPostDeleted),
	})
}
