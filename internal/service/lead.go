package service

import (
	"errors"
	"fmt"

	"realty-crm-backend/internal/database/models"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadService handles business logic for sales leads
type LeadService struct {
	repo      *repository.LeadRepository
	validator *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(repo *repository.LeadRepository, validator *validator.Validate) *LeadService {
	return &LeadService{repo: repo, validator: validator}
}

// CreateLeadRequest represents the request to create a lead
type CreateLeadRequest struct {
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Name      string     `json:"name" validate:"required,min=1,max=120"`
	Phone     string     `json:"phone" validate:"required,min=1,max=20"`
	Email     string     `json:"email" validate:"omitempty,email,max=120"`
	Source    string     `json:"source" validate:"max=80"`
	Notes     string     `json:"notes" validate:"max=1000"`
}

// UpdateLeadRequest represents the request to update a lead
type UpdateLeadRequest struct {
	Name   *string            `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Phone  *string            `json:"phone,omitempty" validate:"omitempty,min=1,max=20"`
	Email  *string            `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Status *models.LeadStatus `json:"status,omitempty"`
	Notes  *string            `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// LeadResponse represents the response for lead operations
type LeadResponse struct {
	ID        uuid.UUID         `json:"id"`
	ProjectID *uuid.UUID        `json:"project_id,omitempty"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Source    string            `json:"source"`
	Status    models.LeadStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt string            `json:"created_at"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new lead in status "new"
func (s *LeadService) Create(req *CreateLeadRequest, actor string) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lead := &models.Lead{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Source:    req.Source,
		Status:    models.LeadStatusNew,
		Notes:     req.Notes,
	}
	lead.CreatedBy = actor
	lead.UpdatedBy = actor

	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return s.toResponse(lead), nil
}

// GetByID retrieves a lead by ID
func (s *LeadService) GetByID(id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return s.toResponse(lead), nil
}

// List retrieves leads with pagination, optionally filtered by status
func (s *LeadService) List(status *models.LeadStatus, page, pageSize int) (*LeadListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	offset := (page - 1) * pageSize
	leads, total, err := s.repo.GetAll(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = *s.toResponse(&lead)
	}

	return &LeadListResponse{
		Leads:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a lead
func (s *LeadService) Update(id uuid.UUID, req *UpdateLeadRequest, actor string) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	if req.Name != nil {
		lead.Name = *req.Name
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Status != nil {
		lead.Status = *req.Status
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	lead.UpdatedBy = actor

	if err := s.repo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return s.toResponse(lead), nil
}

// Delete deletes a lead
func (s *LeadService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeadNotFound
		}
		return fmt.Errorf("failed to get lead: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

// toResponse converts a lead model to response
func (s *LeadService) toResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:        lead.ID,
		ProjectID: lead.ProjectID,
		Name:      lead.Name,
		Phone:     lead.Phone,
		Email:     lead.Email,
		Source:    lead.Source,
		Status:    lead.Status,
		Notes:     lead.Notes,
		CreatedAt: lead.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
