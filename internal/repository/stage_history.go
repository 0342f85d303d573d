package repository

import (
	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageHistoryRepository handles database operations for the registration
// stage audit log. The log is append-only: there is no update or delete.
type StageHistoryRepository struct {
	db *gorm.DB
}

// NewStageHistoryRepository creates a new stage history repository
func NewStageHistoryRepository(db *gorm.DB) *StageHistoryRepository {
	return &StageHistoryRepository{db: db}
}

// Create appends a new history entry
func (r *StageHistoryRepository) Create(entry *models.StageHistory) error {
	return r.db.Create(entry).Error
}

// GetByBookingID retrieves the full history of a booking, newest first,
// with stage relations preloaded
func (r *StageHistoryRepository) GetByBookingID(bookingID uuid.UUID) ([]models.StageHistory, error) {
	var entries []models.StageHistory
	err := r.db.Where("booking_id = ?", bookingID).
		Preload("FromStage").
		Preload("ToStage").
		Order("changed_at DESC").
		Find(&entries).Error
	return entries, err
}

// GetLatestByBookingID retrieves the most recent history entry of a
// booking, or gorm.ErrRecordNotFound when registration has not started
func (r *StageHistoryRepository) GetLatestByBookingID(bookingID uuid.UUID) (*models.StageHistory, error) {
	var entry models.StageHistory
	err := r.db.Where("booking_id = ?", bookingID).
		Preload("ToStage").
		Order("changed_at DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ExistsByStageID checks whether any history entry references the stage,
// as origin or target
func (r *StageHistoryRepository) ExistsByStageID(stageID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.StageHistory{}).
		Where("from_stage_id = ? OR to_stage_id = ?", stageID, stageID).
		Count(&count).Error
	return count > 0, err
}

// CountByBookingID counts the history entries of a booking
func (r *StageHistoryRepository) CountByBookingID(bookingID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.StageHistory{}).Where("booking_id = ?", bookingID).Count(&count).Error
	return count, err
}
