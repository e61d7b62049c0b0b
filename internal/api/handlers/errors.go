package handlers

import (
	"errors"
	"net/http"

	apperrors "lab-portal-backend/internal/errors"
	"lab-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// writeError maps service errors to HTTP status codes with a uniform
// {"error": ...} body.
func writeError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Unique-index violation from a concurrent insert that slipped past
		// the service-level existence check.
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource already exists"})
	case apperrors.IsValidation(err),
		errors.As(err, &validationErrs),
		errors.Is(err, apperrors.ErrAlreadyLeadsTeam),
		errors.Is(err, apperrors.ErrInvalidLeaderRole),
		errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrUserReferenced):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
