package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "realty-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// handleServiceError maps service errors to HTTP responses. Workflow guard
// violations surface as 422 so clients can distinguish them from malformed
// requests.
func handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrReadOnlyMode):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrBookingAlreadyShifted),
		errors.Is(err, apperrors.ErrStageInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStageTransitionNotAllowed),
		errors.Is(err, apperrors.ErrNoStagesConfigured),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrDueDateInPast),
		errors.Is(err, apperrors.ErrDemandNoteNotIssued),
		errors.Is(err, apperrors.ErrNoticeAlreadyPublished),
		errors.Is(err, apperrors.ErrInvalidTimeRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseUUIDParam parses a UUID path parameter, responding 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page and page_size query parameters
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
