package repository

import (
	"time"

	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for community events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves events with pagination
func (r *EventRepository) GetAll(limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	if err := r.db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("starts_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// GetUpcoming retrieves events that start after now, soonest first
func (r *EventRepository) GetUpcoming(limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.Model(&models.Event{}).Where("starts_at > ?", time.Now())

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("starts_at ASC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// Update updates an event
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete deletes an event
func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}
