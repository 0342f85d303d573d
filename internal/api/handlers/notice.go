package handlers

import (
	"net/http"

	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NoticeHandler handles HTTP requests for community notice operations
type NoticeHandler struct {
	noticeService service.NoticeServiceInterface
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeService service.NoticeServiceInterface) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
	}
}

// CreateNotice handles POST /notices
// @Summary Create a notice
// @Description Create a new unpublished community notice
// @Tags notices
// @Accept json
// @Produce json
// @Param request body service.CreateNoticeRequest true "Notice details"
// @Success 201 {object} service.NoticeResponse "Notice created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notices [post]
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req service.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	notice, err := h.noticeService.Create(&req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notice)
}

// GetNotice handles GET /notices/:id
// @Summary Get a notice
// @Description Get a notice by its ID
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} service.NoticeResponse "Notice details"
// @Failure 400 {object} ErrorResponse "Invalid notice ID"
// @Failure 404 {object} ErrorResponse "Notice not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notices/{id} [get]
func (h *NoticeHandler) GetNotice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	notice, err := h.noticeService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notice)
}

// ListNotices handles GET /notices
// @Summary List notices
// @Description List notices with pagination; viewers see only published notices
// @Tags notices
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.NoticeListResponse "Notices"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notices [get]
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	page, pageSize := parsePagination(c)

	// Only staff roles may see unpublished notices.
	role := auth.RoleFromContext(c)
	publishedOnly := role == auth.RoleViewer

	notices, err := h.noticeService.List(publishedOnly, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notices)
}

// UpdateNotice handles PUT /notices/:id
// @Summary Update a notice
// @Description Update an unpublished notice
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Param request body service.UpdateNoticeRequest true "Fields to update"
// @Success 200 {object} service.NoticeResponse "Updated notice"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Notice not found"
// @Failure 422 {object} ErrorResponse "Notice already published"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notices/{id} [put]
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	notice, err := h.noticeService.Update(id, &req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notice)
}

// PublishNotice handles POST /notices/:id/publish
// @Summary Publish a notice
// @Description Mark a notice as published; publishing twice is rejected
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} service.NoticeResponse "Published notice"
// @Failure 400 {object} ErrorResponse "Invalid notice ID"
// @Failure 404 {object} ErrorResponse "Notice not found"
// @Failure 422 {object} ErrorResponse "Notice already published"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notices/{id}/publish [post]
func (h *NoticeHandler) PublishNotice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	notice, err := h.noticeService.Publish(id, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notice)
}

// DeleteNotice handles DELETE /notices/:id
// @Summary Delete a notice
// @Description Delete a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Success 204 "Notice deleted"
// @Failure 400 {object} ErrorResponse "Invalid notice ID"
// @Failure 404 {object} ErrorResponse "Notice not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notices/{id} [delete]
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.noticeService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
