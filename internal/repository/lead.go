package repository

import (
	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves leads with pagination, optionally filtered by status
func (r *LeadRepository) GetAll(status *models.LeadStatus, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// Update updates a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

// Delete deletes a lead
func (r *LeadRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Lead{}, "id = ?", id).Error
}
