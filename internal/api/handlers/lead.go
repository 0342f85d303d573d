package handlers

import (
	"net/http"

	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/database/models"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// CreateLead handles POST /leads
// @Summary Create a lead
// @Description Create a new sales lead in status "new"
// @Tags leads
// @Accept json
// @Produce json
// @Param request body service.CreateLeadRequest true "Lead details"
// @Success 201 {object} service.LeadResponse "Lead created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.Create(&req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// GetLead handles GET /leads/:id
// @Summary Get a lead
// @Description Get a lead by its ID
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} service.LeadResponse "Lead details"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description List leads with pagination, optionally filtered by status
// @Tags leads
// @Accept json
// @Produce json
// @Param status query string false "Lead status filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LeadListResponse "Leads"
// @Failure 422 {object} ErrorResponse "Invalid status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var status *models.LeadStatus
	if raw := c.Query("status"); raw != "" {
		s := models.LeadStatus(raw)
		status = &s
	}

	leads, err := h.leadService.List(status, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

// UpdateLead handles PUT /leads/:id
// @Summary Update a lead
// @Description Update a lead's details or move it through the funnel
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body service.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} service.LeadResponse "Updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 422 {object} ErrorResponse "Invalid status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.Update(id, &req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Delete a lead
// @Description Delete a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 204 "Lead deleted"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
