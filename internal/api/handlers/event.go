package handlers

import (
	"net/http"

	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for community event operations
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent handles POST /events
// @Summary Create an event
// @Description Create a new community event
// @Tags events
// @Accept json
// @Produce json
// @Param request body service.CreateEventRequest true "Event details"
// @Success 201 {object} service.EventResponse "Event created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 422 {object} ErrorResponse "Invalid time range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.eventService.Create(&req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /events/:id
// @Summary Get an event
// @Description Get an event by its ID
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventResponse "Event details"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListEvents handles GET /events
// @Summary List events
// @Description List events with pagination; pass upcoming=true for events that have not started yet
// @Tags events
// @Accept json
// @Produce json
// @Param upcoming query bool false "Only upcoming events"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.EventListResponse "Events"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, pageSize := parsePagination(c)
	upcoming := c.Query("upcoming") == "true"

	events, err := h.eventService.List(upcoming, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Description Delete an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 204 "Event deleted"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
