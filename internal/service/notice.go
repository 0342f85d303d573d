package service

import (
	"errors"
	"fmt"
	"time"

	"realty-crm-backend/internal/database/models"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoticeService handles business logic for community notices
type NoticeService struct {
	repo      *repository.NoticeRepository
	validator *validator.Validate
}

// NewNoticeService creates a new notice service
func NewNoticeService(repo *repository.NoticeRepository, validator *validator.Validate) *NoticeService {
	return &NoticeService{repo: repo, validator: validator}
}

// CreateNoticeRequest represents the request to create a notice
type CreateNoticeRequest struct {
	Title    string                `json:"title" validate:"required,min=1,max=200"`
	Body     string                `json:"body" validate:"required"`
	Category models.NoticeCategory `json:"category"`
}

// UpdateNoticeRequest represents the request to update a notice
type UpdateNoticeRequest struct {
	Title    *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body     *string                `json:"body,omitempty" validate:"omitempty,min=1"`
	Category *models.NoticeCategory `json:"category,omitempty"`
}

// NoticeResponse represents the response for notice operations
type NoticeResponse struct {
	ID        uuid.UUID             `json:"id"`
	Title     string                `json:"title"`
	Body      string                `json:"body"`
	Category  models.NoticeCategory `json:"category"`
	Published bool                  `json:"published"`
	PublishAt *string               `json:"publish_at,omitempty"`
	CreatedAt string                `json:"created_at"`
}

// NoticeListResponse represents a paginated list of notices
type NoticeListResponse struct {
	Notices  []NoticeResponse `json:"notices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new unpublished notice
func (s *NoticeService) Create(req *CreateNoticeRequest, actor string) (*NoticeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := req.Category
	if category == "" {
		category = models.NoticeCategoryGeneral
	}
	if !category.IsValid() {
		return nil, apperrors.NewValidationError("category", "must be one of general, maintenance, billing, emergency")
	}

	notice := &models.Notice{
		Title:    req.Title,
		Body:     req.Body,
		Category: category,
	}
	notice.CreatedBy = actor
	notice.UpdatedBy = actor

	if err := s.repo.Create(notice); err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}

	return s.toResponse(notice), nil
}

// GetByID retrieves a notice by ID
func (s *NoticeService) GetByID(id uuid.UUID) (*NoticeResponse, error) {
	notice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return s.toResponse(notice), nil
}

// List retrieves notices with pagination. Non-privileged callers see only
// published notices.
func (s *NoticeService) List(publishedOnly bool, page, pageSize int) (*NoticeListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	notices, total, err := s.repo.GetAll(publishedOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	responses := make([]NoticeResponse, len(notices))
	for i, notice := range notices {
		responses[i] = *s.toResponse(&notice)
	}

	return &NoticeListResponse{
		Notices:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an unpublished notice
func (s *NoticeService) Update(id uuid.UUID, req *UpdateNoticeRequest, actor string) (*NoticeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Category != nil && !req.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "must be one of general, maintenance, billing, emergency")
	}

	notice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}

	if notice.Published {
		return nil, apperrors.ErrNoticeAlreadyPublished
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Body != nil {
		notice.Body = *req.Body
	}
	if req.Category != nil {
		notice.Category = *req.Category
	}
	notice.UpdatedBy = actor

	if err := s.repo.Update(notice); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}

	return s.toResponse(notice), nil
}

// Publish marks a notice as published, stamping the publish time
func (s *NoticeService) Publish(id uuid.UUID, actor string) (*NoticeResponse, error) {
	notice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}

	if notice.Published {
		return nil, apperrors.ErrNoticeAlreadyPublished
	}

	now := time.Now()
	notice.Published = true
	notice.PublishAt = &now
	notice.UpdatedBy = actor

	if err := s.repo.Update(notice); err != nil {
		return nil, fmt.Errorf("failed to publish notice: %w", err)
	}

	return s.toResponse(notice), nil
}

// Delete deletes a notice
func (s *NoticeService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoticeNotFound
		}
		return fmt.Errorf("failed to get notice: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}

// toResponse converts a notice model to response
func (s *NoticeService) toResponse(notice *models.Notice) *NoticeResponse {
	response := &NoticeResponse{
		ID:        notice.ID,
		Title:     notice.Title,
		Body:      notice.Body,
		Category:  notice.Category,
		Published: notice.Published,
		CreatedAt: notice.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if notice.PublishAt != nil {
		publishAt := notice.PublishAt.Format("2006-01-02T15:04:05Z07:00")
		response.PublishAt = &publishAt
	}
	return response
}
