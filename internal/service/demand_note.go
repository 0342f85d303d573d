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

// DemandNoteService handles business logic for post-sales demand notes.
// Notes move draft -> issued -> paid; cancelled is terminal.
type DemandNoteService struct {
	repo        *repository.DemandNoteRepository
	bookingRepo *repository.BookingRepository
	validator   *validator.Validate
}

// NewDemandNoteService creates a new demand note service
func NewDemandNoteService(
	repo *repository.DemandNoteRepository,
	bookingRepo *repository.BookingRepository,
	validator *validator.Validate,
) *DemandNoteService {
	return &DemandNoteService{
		repo:        repo,
		bookingRepo: bookingRepo,
		validator:   validator,
	}
}

// CreateDemandNoteRequest represents the request to create a demand note
type CreateDemandNoteRequest struct {
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
	NoteNo    string    `json:"note_no" validate:"required,min=1,max=40"`
	Amount    string    `json:"amount" validate:"required"`
	DueDate   string    `json:"due_date" validate:"required"`
	Remarks   string    `json:"remarks" validate:"max=500"`
}

// DemandNoteResponse represents the response for demand note operations
type DemandNoteResponse struct {
	ID        uuid.UUID               `json:"id"`
	BookingID uuid.UUID               `json:"booking_id"`
	NoteNo    string                  `json:"note_no"`
	Amount    string                  `json:"amount"`
	DueDate   string                  `json:"due_date"`
	Status    models.DemandNoteStatus `json:"status"`
	Remarks   string                  `json:"remarks"`
	CreatedAt string                  `json:"created_at"`
}

// DemandNoteListResponse represents a paginated list of demand notes
type DemandNoteListResponse struct {
	DemandNotes []DemandNoteResponse `json:"demand_notes"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new demand note in draft status
func (s *DemandNoteService) Create(req *CreateDemandNoteRequest, actor string) (*DemandNoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.bookingRepo.GetByID(req.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	exists, err := s.repo.ExistsByNoteNo(req.NoteNo)
	if err != nil {
		return nil, fmt.Errorf("failed to check note number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDemandNoteExists
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, apperrors.NewValidationError("amount", "must be greater than zero")
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("due_date", "must be a date in YYYY-MM-DD format")
	}
	if dueDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, apperrors.ErrDueDateInPast
	}

	note := &models.DemandNote{
		BookingID: req.BookingID,
		NoteNo:    req.NoteNo,
		Amount:    amount,
		DueDate:   dueDate,
		Status:    models.DemandNoteStatusDraft,
		Remarks:   req.Remarks,
	}
	note.CreatedBy = actor
	note.UpdatedBy = actor

	if err := s.repo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create demand note: %w", err)
	}

	return s.toResponse(note), nil
}

// GetByID retrieves a demand note by ID
func (s *DemandNoteService) GetByID(id uuid.UUID) (*DemandNoteResponse, error) {
	note, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDemandNoteNotFound
		}
		return nil, fmt.Errorf("failed to get demand note: %w", err)
	}
	return s.toResponse(note), nil
}

// ListByBooking retrieves demand notes of a booking with pagination
func (s *DemandNoteService) ListByBooking(bookingID uuid.UUID, page, pageSize int) (*DemandNoteListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if _, err := s.bookingRepo.GetByID(bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	offset := (page - 1) * pageSize
	notes, total, err := s.repo.GetByBookingID(bookingID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list demand notes: %w", err)
	}

	responses := make([]DemandNoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = *s.toResponse(&note)
	}

	return &DemandNoteListResponse{
		DemandNotes: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Issue moves a draft demand note to issued
func (s *DemandNoteService) Issue(id uuid.UUID, actor string) (*DemandNoteResponse, error) {
	note, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDemandNoteNotFound
		}
		return nil, fmt.Errorf("failed to get demand note: %w", err)
	}

	if note.Status != models.DemandNoteStatusDraft {
		return nil, apperrors.ErrInvalidStatus
	}

	note.Status = models.DemandNoteStatusIssued
	note.UpdatedBy = actor
	if err := s.repo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to issue demand note: %w", err)
	}

	return s.toResponse(note), nil
}

// MarkPaid moves an issued demand note to paid
func (s *DemandNoteService) MarkPaid(id uuid.UUID, actor string) (*DemandNoteResponse, error) {
	note, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDemandNoteNotFound
		}
		return nil, fmt.Errorf("failed to get demand note: %w", err)
	}

	if note.Status != models.DemandNoteStatusIssued {
		return nil, apperrors.ErrDemandNoteNotIssued
	}

	note.Status = models.DemandNoteStatusPaid
	note.UpdatedBy = actor
	if err := s.repo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to mark demand note as paid: %w", err)
	}

	return s.toResponse(note), nil
}

// Cancel cancels a demand note that has not been paid
func (s *DemandNoteService) Cancel(id uuid.UUID, actor string) (*DemandNoteResponse, error) {
	note, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDemandNoteNotFound
		}
		return nil, fmt.Errorf("failed to get demand note: %w", err)
	}

	if note.Status == models.DemandNoteStatusPaid || note.Status == models.DemandNoteStatusCancelled {
		return nil, apperrors.ErrInvalidStatus
	}

	note.Status = models.DemandNoteStatusCancelled
	note.UpdatedBy = actor
	if err := s.repo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to cancel demand note: %w", err)
	}

	return s.toResponse(note), nil
}

// toResponse converts a demand note model to response
func (s *DemandNoteService) toResponse(note *models.DemandNote) *DemandNoteResponse {
	return &DemandNoteResponse{
		ID:        note.ID,
		BookingID: note.BookingID,
		NoteNo:    note.NoteNo,
		Amount:    note.Amount.StringFixed(2),
		DueDate:   note.DueDate.Format("2006-01-02"),
		Status:    note.Status,
		Remarks:   note.Remarks,
		CreatedAt: note.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
