package handlers

import (
	"net/http"

	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingService service.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking handles POST /bookings
// @Summary Create a booking
// @Description Create a new unit booking in a project
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body service.CreateBookingRequest true "Booking details"
// @Success 201 {object} service.BookingResponse "Booking created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Booking code already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	booking, err := h.bookingService.Create(&req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBooking handles GET /bookings/:id
// @Summary Get a booking
// @Description Get a booking by its ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} service.BookingResponse "Booking details"
// @Failure 400 {object} ErrorResponse "Invalid booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListBookingsByProject handles GET /projects/:id/bookings
// @Summary List bookings of a project
// @Description List a project's bookings with pagination, newest first
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BookingListResponse "Bookings"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/bookings [get]
func (h *BookingHandler) ListBookingsByProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	bookings, err := h.bookingService.ListByProject(projectID, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking handles PUT /bookings/:id
// @Summary Update a booking
// @Description Update a booking's customer and unit details
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body service.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} service.BookingResponse "Updated booking"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	booking, err := h.bookingService.Update(id, &req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking handles DELETE /bookings/:id
// @Summary Delete a booking
// @Description Delete a booking and its stage history
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 "Booking deleted"
// @Failure 400 {object} ErrorResponse "Invalid booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
