// internal/handlers/admin.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/globalkerja/agency-backend/internal/i18n"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /admin/dashboard/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		handleServiceError(c, err, "dashboard")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("recent", "10"))
	recent, err := h.adminService.GetRecentApplications(limit)
	if err != nil {
		handleServiceError(c, err, "dashboard")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats":               stats,
		"recent_applications": recent,
	})
}

// GET /admin/admin-users
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	admins, total, err := h.adminService.ListAdmins(params)
	if err != nil {
		handleServiceError(c, err, "admin_user")
		return
	}

	result := utils.CreatePaginationResult(admins, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /admin/admin-users
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	admin, err := h.adminService.CreateAdmin(&req)
	if err != nil {
		handleServiceError(c, err, "admin_user")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminUserCreated),
		"admin":   admin,
	})
}

// PUT /admin/admin-users/:id
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid admin ID", nil)
		return
	}

	actorIDStr, exists := utils.GetAdminIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	actorID, err := uuid.Parse(actorIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	admin, err := h.adminService.UpdateAdmin(id, actorID, &req)
	if err != nil {
		handleServiceError(c, err, "admin_user")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminUserUpdated),
		"admin":   admin,
	})
}
