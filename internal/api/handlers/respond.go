package handlers

import (
	"errors"
	"net/http"

	apperrors "taskboard-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// respondError maps service errors to HTTP responses so every handler reports
// failures the same way
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.As(err, &validationErrs),
		errors.Is(err, apperrors.ErrAmbiguousAssignment),
		errors.Is(err, apperrors.ErrEmployeeOutsideTeam),
		errors.Is(err, apperrors.ErrWorkstationOutsideTeam),
		errors.Is(err, apperrors.ErrManagerNotAssignable),
		errors.Is(err, apperrors.ErrInvalidDateFormat),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseUUIDParam parses a path parameter as a UUID, writing a 400 on failure.
// The bool reports whether parsing succeeded.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
