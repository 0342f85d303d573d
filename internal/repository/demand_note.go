package repository

import (
	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemandNoteRepository handles database operations for demand notes
type DemandNoteRepository struct {
	db *gorm.DB
}

// NewDemandNoteRepository creates a new demand note repository
func NewDemandNoteRepository(db *gorm.DB) *DemandNoteRepository {
	return &DemandNoteRepository{db: db}
}

// Create creates a new demand note
func (r *DemandNoteRepository) Create(note *models.DemandNote) error {
	return r.db.Create(note).Error
}

// GetByID retrieves a demand note by ID
func (r *DemandNoteRepository) GetByID(id uuid.UUID) (*models.DemandNote, error) {
	var note models.DemandNote
	err := r.db.First(&note, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByBookingID retrieves demand notes of a booking with pagination
func (r *DemandNoteRepository) GetByBookingID(bookingID uuid.UUID, limit, offset int) ([]models.DemandNote, int64, error) {
	var notes []models.DemandNote
	var total int64

	if err := r.db.Model(&models.DemandNote{}).Where("booking_id = ?", bookingID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("booking_id = ?", bookingID).Order("due_date ASC").Limit(limit).Offset(offset).Find(&notes).Error
	return notes, total, err
}

// ExistsByNoteNo checks whether a demand note with the number exists
func (r *DemandNoteRepository) ExistsByNoteNo(noteNo string) (bool, error) {
	var count int64
	err := r.db.Model(&models.DemandNote{}).Where("note_no = ?", noteNo).Count(&count).Error
	return count > 0, err
}

// Update updates a demand note
func (r *DemandNoteRepository) Update(note *models.DemandNote) error {
	return r.db.Save(note).Error
}

// Delete deletes a demand note
func (r *DemandNoteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DemandNote{}, "id = ?", id).Error
}
