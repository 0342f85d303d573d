package service

import (
	"errors"
	"fmt"

	"realty-crm-backend/internal/database/models"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingService handles business logic for unit bookings
type BookingService struct {
	repo        *repository.BookingRepository
	projectRepo *repository.ProjectRepository
	validator   *validator.Validate
}

// NewBookingService creates a new booking service
func NewBookingService(
	repo *repository.BookingRepository,
	projectRepo *repository.ProjectRepository,
	validator *validator.Validate,
) *BookingService {
	return &BookingService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	ProjectID     uuid.UUID `json:"project_id" validate:"required"`
	BookingCode   string    `json:"booking_code" validate:"required,min=1,max=40"`
	FormRefNo     string    `json:"form_ref_no" validate:"max=40"`
	CustomerName  string    `json:"customer_name" validate:"required,min=1,max=120"`
	CustomerPhone string    `json:"customer_phone" validate:"max=20"`
	CustomerEmail string    `json:"customer_email" validate:"omitempty,email,max=120"`
	UnitNo        string    `json:"unit_no" validate:"max=40"`
	Amount        string    `json:"amount" validate:"omitempty"`
}

// UpdateBookingRequest represents the request to update a booking
type UpdateBookingRequest struct {
	CustomerName  *string `json:"customer_name,omitempty" validate:"omitempty,min=1,max=120"`
	CustomerPhone *string `json:"customer_phone,omitempty" validate:"omitempty,max=20"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email,max=120"`
	UnitNo        *string `json:"unit_no,omitempty" validate:"omitempty,max=40"`
	Amount        *string `json:"amount,omitempty"`
}

// BookingResponse represents the response for booking operations
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"project_id"`
	BookingCode   string    `json:"booking_code"`
	FormRefNo     string    `json:"form_ref_no"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	UnitNo        string    `json:"unit_no"`
	Amount        string    `json:"amount"`
	IsShifted     bool      `json:"is_shifted"`
	ShiftNote     string    `json:"shift_note,omitempty"`
	CreatedAt     string    `json:"created_at"`
}

// BookingListResponse represents a paginated list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new booking
func (s *BookingService) Create(req *CreateBookingRequest, actor string) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	exists, err := s.repo.ExistsByCode(req.BookingCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check booking code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrBookingExists
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ProjectID:     req.ProjectID,
		BookingCode:   req.BookingCode,
		FormRefNo:     req.FormRefNo,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		UnitNo:        req.UnitNo,
		Amount:        amount,
	}
	booking.CreatedBy = actor
	booking.UpdatedBy = actor

	if err := s.repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.toResponse(booking), nil
}

// GetByID retrieves a booking by ID
func (s *BookingService) GetByID(id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return s.toResponse(booking), nil
}

// ListByProject retrieves bookings of a project with pagination
func (s *BookingService) ListByProject(projectID uuid.UUID, page, pageSize int) (*BookingListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	offset := (page - 1) * pageSize
	bookings, total, err := s.repo.GetByProjectID(projectID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *s.toResponse(&booking)
	}

	return &BookingListResponse{
		Bookings: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a booking's customer and unit details
func (s *BookingService) Update(id uuid.UUID, req *UpdateBookingRequest, actor string) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	booking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		booking.CustomerPhone = *req.CustomerPhone
	}
	if req.CustomerEmail != nil {
		booking.CustomerEmail = *req.CustomerEmail
	}
	if req.UnitNo != nil {
		booking.UnitNo = *req.UnitNo
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		booking.Amount = amount
	}
	booking.UpdatedBy = actor

	if err := s.repo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return s.toResponse(booking), nil
}

// Delete deletes a booking
func (s *BookingService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// toResponse converts a booking model to response
func (s *BookingService) toResponse(booking *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID,
		ProjectID:     booking.ProjectID,
		BookingCode:   booking.BookingCode,
		FormRefNo:     booking.FormRefNo,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		CustomerEmail: booking.CustomerEmail,
		UnitNo:        booking.UnitNo,
		Amount:        booking.Amount.StringFixed(2),
		IsShifted:     booking.IsShifted,
		ShiftNote:     booking.ShiftNote,
		CreatedAt:     booking.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// parseAmount parses a decimal money string; empty means zero. Negative
// amounts are rejected.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError("amount", "must be a decimal number")
	}
	if amount.IsNegative() {
		return decimal.Zero, apperrors.NewValidationError("amount", "must not be negative")
	}
	return amount, nil
}
