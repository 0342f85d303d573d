package handlers

import (
	"net/http"

	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StageHandler handles HTTP requests for registration stage configuration
type StageHandler struct {
	stageService service.StageServiceInterface
}

// NewStageHandler creates a new stage handler
func NewStageHandler(stageService service.StageServiceInterface) *StageHandler {
	return &StageHandler{
		stageService: stageService,
	}
}

// CreateStage handles POST /stages
// @Summary Create a stage
// @Description Add a registration stage to a project; sort order must be unique within the project
// @Tags stages
// @Accept json
// @Produce json
// @Param request body service.CreateStageRequest true "Stage details"
// @Success 201 {object} service.StageResponse "Stage created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Stage order already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stages [post]
func (h *StageHandler) CreateStage(c *gin.Context) {
	var req service.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	stage, err := h.stageService.Create(&req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stage)
}

// ListStagesByProject handles GET /projects/:id/stages
// @Summary List stages of a project
// @Description List a project's registration stages in sort order
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} service.StageResponse "Stages"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/stages [get]
func (h *StageHandler) ListStagesByProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stages, err := h.stageService.ListByProject(projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stages)
}

// UpdateStage handles PUT /stages/:id
// @Summary Update a stage
// @Description Update a stage's name or sort order
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param request body service.UpdateStageRequest true "Fields to update"
// @Success 200 {object} service.StageResponse "Updated stage"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Failure 409 {object} ErrorResponse "Stage order already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stages/{id} [put]
func (h *StageHandler) UpdateStage(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	stage, err := h.stageService.Update(id, &req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stage)
}

// DeleteStage handles DELETE /stages/:id
// @Summary Delete a stage
// @Description Delete a registration stage
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Success 204 "Stage deleted"
// @Failure 400 {object} ErrorResponse "Invalid stage ID"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Failure 409 {object} ErrorResponse "Stage referenced by registration history"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stages/{id} [delete]
func (h *StageHandler) DeleteStage(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.stageService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
