package service

import (
	"errors"
	"fmt"
	"time"

	"realty-crm-backend/internal/database/models"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for community events
type EventService struct {
	repo      *repository.EventRepository
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(repo *repository.EventRepository, validator *validator.Validate) *EventService {
	return &EventService{repo: repo, validator: validator}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Venue    string `json:"venue" validate:"max=200"`
	StartsAt string `json:"starts_at" validate:"required"`
	EndsAt   string `json:"ends_at" validate:"required"`
	Capacity int    `json:"capacity" validate:"min=0"`
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Venue    string    `json:"venue"`
	StartsAt string    `json:"starts_at"`
	EndsAt   string    `json:"ends_at"`
	Capacity int       `json:"capacity"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new event
func (s *EventService) Create(req *CreateEventRequest, actor string) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, apperrors.NewValidationError("starts_at", "must be an RFC3339 timestamp")
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return nil, apperrors.NewValidationError("ends_at", "must be an RFC3339 timestamp")
	}
	if !endsAt.After(startsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	event := &models.Event{
		Title:    req.Title,
		Venue:    req.Venue,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Capacity: req.Capacity,
	}
	event.CreatedBy = actor
	event.UpdatedBy = actor

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.toResponse(event), nil
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return s.toResponse(event), nil
}

// List retrieves events with pagination; upcoming limits the listing to
// events that have not started yet, soonest first.
func (s *EventService) List(upcoming bool, page, pageSize int) (*EventListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var events []models.Event
	var total int64
	var err error
	if upcoming {
		events, total, err = s.repo.GetUpcoming(pageSize, offset)
	} else {
		events, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = *s.toResponse(&event)
	}

	return &EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete deletes an event
func (s *EventService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// toResponse converts an event model to response
func (s *EventService) toResponse(event *models.Event) *EventResponse {
	return &EventResponse{
		ID:       event.ID,
		Title:    event.Title,
		Venue:    event.Venue,
		StartsAt: event.StartsAt.Format(time.RFC3339),
		EndsAt:   event.EndsAt.Format(time.RFC3339),
		Capacity: event.Capacity,
	}
}
