// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/globalkerja/agency-backend/internal/services"
	"github.com/globalkerja/agency-backend/internal/utils"
)

// handleServiceError maps service-layer errors onto the HTTP taxonomy.
// Anything unrecognized is logged and reported as a generic internal error
// so store failures never leak details to clients.
func handleServiceError(c *gin.Context, err error, resource string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrDuplicate):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, "")
	case errors.Is(err, services.ErrAccountInactive):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	default:
		logrus.WithError(err).WithField("resource", resource).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}
