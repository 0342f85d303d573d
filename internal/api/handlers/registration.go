package handlers

import (
	"net/http"

	"realty-crm-backend/internal/api/middleware"
	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for the registration stage
// progression workflow
type RegistrationHandler struct {
	registrationService service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// GetTimeline handles GET /bookings/:id/timeline
// @Summary Get registration timeline
// @Description Get the registration stage timeline of a booking: ordered stages with classifications, current stage and history
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} service.TimelineSnapshotResponse "Timeline snapshot"
// @Failure 400 {object} ErrorResponse "Invalid booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id}/timeline [get]
func (h *RegistrationHandler) GetTimeline(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	snapshot, err := h.registrationService.GetTimeline(bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// AdvanceStage handles POST /bookings/:id/advance
// @Summary Advance registration stage
// @Description Move a booking's registration into the target stage; only forward transitions are allowed
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body service.AdvanceStageRequest true "Target stage and optional note"
// @Success 200 {object} service.TimelineSnapshotResponse "Updated timeline snapshot"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Timeline is read-only in this view"
// @Failure 404 {object} ErrorResponse "Booking or stage not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id}/advance [post]
func (h *RegistrationHandler) AdvanceStage(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AdvanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor := auth.ActorFromContext(c)
	mode := middleware.ViewModeFromContext(c)

	snapshot, err := h.registrationService.AdvanceStage(bookingID, &req, actor, mode)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ShiftBooking handles POST /bookings/:id/shift
// @Summary Mark booking as shifted
// @Description Set the one-shot shifted flag on a booking; shifting twice is rejected
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body service.ShiftBookingRequest true "Optional note"
// @Success 200 {object} map[string]string "Booking marked as shifted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Timeline is read-only in this view"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 409 {object} ErrorResponse "Booking already shifted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id}/shift [post]
func (h *RegistrationHandler) ShiftBooking(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ShiftBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor := auth.ActorFromContext(c)
	mode := middleware.ViewModeFromContext(c)

	if err := h.registrationService.ShiftBooking(bookingID, &req, actor, mode); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking marked as shifted"})
}
