package repository

import (
	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoticeRepository handles database operations for community notices
type NoticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *gorm.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create creates a new notice
func (r *NoticeRepository) Create(notice *models.Notice) error {
	return r.db.Create(notice).Error
}

// GetByID retrieves a notice by ID
func (r *NoticeRepository) GetByID(id uuid.UUID) (*models.Notice, error) {
	var notice models.Notice
	err := r.db.First(&notice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// GetAll retrieves notices with pagination, optionally only published ones
func (r *NoticeRepository) GetAll(publishedOnly bool, limit, offset int) ([]models.Notice, int64, error) {
	var notices []models.Notice
	var total int64

	query := r.db.Model(&models.Notice{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notices).Error
	return notices, total, err
}

// Update updates a notice
func (r *NoticeRepository) Update(notice *models.Notice) error {
	return r.db.Save(notice).Error
}

// Delete deletes a notice
func (r *NoticeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Notice{}, "id = ?", id).Error
}
