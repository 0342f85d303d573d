package service

import (
	"errors"
	"fmt"

	"realty-crm-backend/internal/config"
	"realty-crm-backend/internal/database/models"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for real-estate projects
type ProjectService struct {
	repo      *repository.ProjectRepository
	stageRepo *repository.StageRepository
	templates config.StageTemplates
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(
	repo *repository.ProjectRepository,
	stageRepo *repository.StageRepository,
	templates config.StageTemplates,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		repo:      repo,
		stageRepo: stageRepo,
		templates: templates,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=120"`
	Code          string `json:"code" validate:"required,min=1,max=40"`
	City          string `json:"city" validate:"max=80"`
	Address       string `json:"address" validate:"max=200"`
	Description   string `json:"description" validate:"max=500"`
	StageTemplate string `json:"stage_template" validate:"max=40"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=80"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new project and seeds its registration stages from the
// requested template set (or "default" when none is named).
func (s *ProjectService) Create(req *CreateProjectRequest, actor string) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.ExistsByNameOrCode(req.Name, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check project uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProjectExists
	}

	templateName := req.StageTemplate
	if templateName == "" {
		templateName = "default"
	}
	template, ok := s.templates[templateName]
	if !ok {
		return nil, apperrors.NewValidationError("stage_template", fmt.Sprintf("unknown template %q", templateName))
	}

	project := &models.Project{
		Name:        req.Name,
		Code:        req.Code,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		IsActive:    true,
	}
	project.CreatedBy = actor
	project.UpdatedBy = actor

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	stages := make([]models.Stage, len(template))
	for i, stageTemplate := range template {
		stages[i] = models.Stage{
			ProjectID: project.ID,
			Name:      stageTemplate.Name,
			SortOrder: stageTemplate.SortOrder,
		}
		stages[i].CreatedBy = actor
		stages[i].UpdatedBy = actor
	}
	if err := s.stageRepo.CreateBatch(stages); err != nil {
		return nil, fmt.Errorf("failed to seed project stages: %w", err)
	}

	return s.toResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// List retrieves projects with pagination
func (s *ProjectService) List(page, pageSize int) (*ProjectListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toResponse(&project)
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest, actor string) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.City != nil {
		project.City = *req.City
	}
	if req.Address != nil {
		project.Address = *req.Address
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	project.UpdatedBy = actor

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project), nil
}

// Delete deletes a project
func (s *ProjectService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Code:        project.Code,
		City:        project.City,
		Address:     project.Address,
		Description: project.Description,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// normalizePagination clamps page parameters to sane bounds
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
