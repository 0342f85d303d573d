package repository

import (
	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByCode retrieves a booking by its booking code
func (r *BookingRepository) GetByCode(code string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "booking_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByProjectID retrieves bookings of a project with pagination
func (r *BookingRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	if err := r.db.Model(&models.Booking{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, total, err
}

// ExistsByCode checks whether a booking with the code exists
func (r *BookingRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Where("booking_code = ?", code).Count(&count).Error
	return count > 0, err
}

// Update updates a booking
func (r *BookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

// MarkShifted sets the one-shot shifted flag and its note
func (r *BookingRepository) MarkShifted(id uuid.UUID, note, actor string) error {
	return r.db.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_shifted": true,
		"shift_note": note,
		"updated_by": actor,
	}).Error
}

// Delete deletes a booking
func (r *BookingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Booking{}, "id = ?", id).Error
}
