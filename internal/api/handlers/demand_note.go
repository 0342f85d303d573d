package handlers

import (
	"net/http"

	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DemandNoteHandler handles HTTP requests for demand note operations
type DemandNoteHandler struct {
	demandNoteService service.DemandNoteServiceInterface
}

// NewDemandNoteHandler creates a new demand note handler
func NewDemandNoteHandler(demandNoteService service.DemandNoteServiceInterface) *DemandNoteHandler {
	return &DemandNoteHandler{
		demandNoteService: demandNoteService,
	}
}

// CreateDemandNote handles POST /demand-notes
// @Summary Create a demand note
// @Description Raise a draft demand note against a booking
// @Tags demand-notes
// @Accept json
// @Produce json
// @Param request body service.CreateDemandNoteRequest true "Demand note details"
// @Success 201 {object} service.DemandNoteResponse "Demand note created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 409 {object} ErrorResponse "Note number already taken"
// @Failure 422 {object} ErrorResponse "Due date in the past"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /demand-notes [post]
func (h *DemandNoteHandler) CreateDemandNote(c *gin.Context) {
	var req service.CreateDemandNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	note, err := h.demandNoteService.Create(&req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetDemandNote handles GET /demand-notes/:id
// @Summary Get a demand note
// @Description Get a demand note by its ID
// @Tags demand-notes
// @Accept json
// @Produce json
// @Param id path string true "Demand note ID"
// @Success 200 {object} service.DemandNoteResponse "Demand note details"
// @Failure 400 {object} ErrorResponse "Invalid demand note ID"
// @Failure 404 {object} ErrorResponse "Demand note not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /demand-notes/{id} [get]
func (h *DemandNoteHandler) GetDemandNote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	note, err := h.demandNoteService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// ListDemandNotesByBooking handles GET /bookings/:id/demand-notes
// @Summary List demand notes of a booking
// @Description List a booking's demand notes with pagination, earliest due first
// @Tags demand-notes
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DemandNoteListResponse "Demand notes"
// @Failure 400 {object} ErrorResponse "Invalid booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id}/demand-notes [get]
func (h *DemandNoteHandler) ListDemandNotesByBooking(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	notes, err := h.demandNoteService.ListByBooking(bookingID, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// IssueDemandNote handles POST /demand-notes/:id/issue
// @Summary Issue a demand note
// @Description Move a draft demand note to issued
// @Tags demand-notes
// @Accept json
// @Produce json
// @Param id path string true "Demand note ID"
// @Success 200 {object} service.DemandNoteResponse "Issued demand note"
// @Failure 400 {object} ErrorResponse "Invalid demand note ID"
// @Failure 404 {object} ErrorResponse "Demand note not found"
// @Failure 422 {object} ErrorResponse "Demand note is not in draft state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /demand-notes/{id}/issue [post]
func (h *DemandNoteHandler) IssueDemandNote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	note, err := h.demandNoteService.Issue(id, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// MarkDemandNotePaid handles POST /demand-notes/:id/paid
// @Summary Mark a demand note as paid
// @Description Move an issued demand note to paid
// @Tags demand-notes
// @Accept json
// @Produce json
// @Param id path string true "Demand note ID"
// @Success 200 {object} service.DemandNoteResponse "Paid demand note"
// @Failure 400 {object} ErrorResponse "Invalid demand note ID"
// @Failure 404 {object} ErrorResponse "Demand note not found"
// @Failure 422 {object} ErrorResponse "Demand note is not issued"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /demand-notes/{id}/paid [post]
func (h *DemandNoteHandler) MarkDemandNotePaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	note, err := h.demandNoteService.MarkPaid(id, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// CancelDemandNote handles POST /demand-notes/:id/cancel
// @Summary Cancel a demand note
// @Description Cancel a demand note that has not been paid
// @Tags demand-notes
// @Accept json
// @Produce json
// @Param id path string true "Demand note ID"
// @Success 200 {object} service.DemandNoteResponse "Cancelled demand note"
// @Failure 400 {object} ErrorResponse "Invalid demand note ID"
// @Failure 404 {object} ErrorResponse "Demand note not found"
// @Failure 422 {object} ErrorResponse "Demand note is paid or already cancelled"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /demand-notes/{id}/cancel [post]
func (h *DemandNoteHandler) CancelDemandNote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	note, err := h.demandNoteService.Cancel(id, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}
