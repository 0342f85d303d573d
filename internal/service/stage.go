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

// StageService handles business logic for registration stages. Stage order
// must be unique within a project; the graph semantics depend on it.
type StageService struct {
	repo        *repository.StageRepository
	projectRepo *repository.ProjectRepository
	historyRepo *repository.StageHistoryRepository
	validator   *validator.Validate
}

// NewStageService creates a new stage service
func NewStageService(
	repo *repository.StageRepository,
	projectRepo *repository.ProjectRepository,
	historyRepo *repository.StageHistoryRepository,
	validator *validator.Validate,
) *StageService {
	return &StageService{
		repo:        repo,
		projectRepo: projectRepo,
		historyRepo: historyRepo,
		validator:   validator,
	}
}

// CreateStageRequest represents the request to create a stage
type CreateStageRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Name      string    `json:"name" validate:"required,min=1,max=80"`
	SortOrder int       `json:"sort_order" validate:"required,min=1"`
}

// UpdateStageRequest represents the request to update a stage
type UpdateStageRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=80"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,min=1"`
}

// StageResponse represents the response for stage operations
type StageResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

// Create creates a new stage in a project
func (s *StageService) Create(req *CreateStageRequest, actor string) (*StageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	taken, err := s.repo.ExistsByProjectAndOrder(req.ProjectID, req.SortOrder, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check stage order: %w", err)
	}
	if taken {
		return nil, apperrors.ErrStageOrderExists
	}

	stage := &models.Stage{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}
	stage.CreatedBy = actor
	stage.UpdatedBy = actor

	if err := s.repo.Create(stage); err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}

	return s.toResponse(stage), nil
}

// ListByProject retrieves the stages of a project in sort order
func (s *StageService) ListByProject(projectID uuid.UUID) ([]StageResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	stages, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	responses := make([]StageResponse, len(stages))
	for i, stage := range stages {
		responses[i] = *s.toResponse(&stage)
	}
	return responses, nil
}

// Update updates a stage's name or sort order
func (s *StageService) Update(id uuid.UUID, req *UpdateStageRequest, actor string) (*StageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	stage, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}

	if req.SortOrder != nil && *req.SortOrder != stage.SortOrder {
		taken, err := s.repo.ExistsByProjectAndOrder(stage.ProjectID, *req.SortOrder, &stage.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check stage order: %w", err)
		}
		if taken {
			return nil, apperrors.ErrStageOrderExists
		}
		stage.SortOrder = *req.SortOrder
	}
	if req.Name != nil {
		stage.Name = *req.Name
	}
	stage.UpdatedBy = actor

	if err := s.repo.Update(stage); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}

	return s.toResponse(stage), nil
}

// Delete deletes a stage. A stage referenced by registration history is
// never deletable: removing it would orphan the audit trail and make the
// affected bookings read as not started.
func (s *StageService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStageNotFound
		}
		return fmt.Errorf("failed to get stage: %w", err)
	}

	inUse, err := s.historyRepo.ExistsByStageID(id)
	if err != nil {
		return fmt.Errorf("failed to check stage history references: %w", err)
	}
	if inUse {
		return apperrors.ErrStageInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	return nil
}

// toResponse converts a stage model to response
func (s *StageService) toResponse(stage *models.Stage) *StageResponse {
	return &StageResponse{
		ID:        stage.ID,
		ProjectID: stage.ProjectID,
		Name:      stage.Name,
		SortOrder: stage.SortOrder,
	}
}
