package repository

import (
	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageRepository handles database operations for registration stages
type StageRepository struct {
	db *gorm.DB
}

// NewStageRepository creates a new stage repository
func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

// Create creates a new stage
func (r *StageRepository) Create(stage *models.Stage) error {
	return r.db.Create(stage).Error
}

// CreateBatch creates multiple stages in one transaction
func (r *StageRepository) CreateBatch(stages []models.Stage) error {
	if len(stages) == 0 {
		return nil
	}
	return r.db.Create(&stages).Error
}

// GetByID retrieves a stage by ID
func (r *StageRepository) GetByID(id uuid.UUID) (*models.Stage, error) {
	var stage models.Stage
	err := r.db.First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetByProjectID retrieves all stages of a project ordered by sort order
func (r *StageRepository) GetByProjectID(projectID uuid.UUID) ([]models.Stage, error) {
	var stages []models.Stage
	err := r.db.Where("project_id = ?", projectID).Order("sort_order ASC").Find(&stages).Error
	return stages, err
}

// ExistsByProjectAndOrder checks whether a stage with the sort order
// already exists in the project, excluding the given stage id
func (r *StageRepository) ExistsByProjectAndOrder(projectID uuid.UUID, sortOrder int, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Stage{}).Where("project_id = ? AND sort_order = ?", projectID, sortOrder)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a stage
func (r *StageRepository) Update(stage *models.Stage) error {
	return r.db.Save(stage).Error
}

// Delete deletes a stage
func (r *StageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Stage{}, "id = ?", id).Error
}
