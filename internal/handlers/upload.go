// internal/handlers/upload.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/globalkerja/agency-backend/internal/i18n"
	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// POST /admin/uploads/:category
func (h *UploadHandler) Upload(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	category := c.Param("category")
	options := h.storageService.GetDefaultUploadOptions(category)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "file"), err.Error())
		return
	}
	defer file.Close()

	if category == "images" {
		if err := h.storageService.ValidateImage(file); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyUploadInvalidType), nil)
			return
		}
	}

	result, err := h.storageService.UploadFile(file, header, options)
	if err != nil {
		if strings.Contains(err.Error(), "exceeds maximum") {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyUploadTooLarge), nil)
			return
		}
		if strings.Contains(err.Error(), "not allowed") {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyUploadInvalidType), nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUploadSuccess),
		"file":    result,
	})
}
