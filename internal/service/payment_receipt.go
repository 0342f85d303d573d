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

// PaymentReceiptService handles business logic for payment receipts.
// Receipts are append-only; corrections are made with offsetting entries.
type PaymentReceiptService struct {
	repo           *repository.PaymentReceiptRepository
	bookingRepo    *repository.BookingRepository
	demandNoteRepo *repository.DemandNoteRepository
	validator      *validator.Validate
}

// NewPaymentReceiptService creates a new payment receipt service
func NewPaymentReceiptService(
	repo *repository.PaymentReceiptRepository,
	bookingRepo *repository.BookingRepository,
	demandNoteRepo *repository.DemandNoteRepository,
	validator *validator.Validate,
) *PaymentReceiptService {
	return &PaymentReceiptService{
		repo:           repo,
		bookingRepo:    bookingRepo,
		demandNoteRepo: demandNoteRepo,
		validator:      validator,
	}
}

// CreatePaymentReceiptRequest represents the request to record a payment
type CreatePaymentReceiptRequest struct {
	BookingID    uuid.UUID          `json:"booking_id" validate:"required"`
	DemandNoteID *uuid.UUID         `json:"demand_note_id,omitempty"`
	ReceiptNo    string             `json:"receipt_no" validate:"required,min=1,max=40"`
	Amount       string             `json:"amount" validate:"required"`
	Mode         models.PaymentMode `json:"mode" validate:"required"`
	ReferenceNo  string             `json:"reference_no" validate:"max=80"`
	ReceivedAt   string             `json:"received_at" validate:"required"`
}

// PaymentReceiptResponse represents the response for receipt operations
type PaymentReceiptResponse struct {
	ID           uuid.UUID          `json:"id"`
	BookingID    uuid.UUID          `json:"booking_id"`
	DemandNoteID *uuid.UUID         `json:"demand_note_id,omitempty"`
	ReceiptNo    string             `json:"receipt_no"`
	Amount       string             `json:"amount"`
	Mode         models.PaymentMode `json:"mode"`
	ReferenceNo  string             `json:"reference_no"`
	ReceivedAt   string             `json:"received_at"`
}

// PaymentReceiptListResponse represents a paginated list of receipts
type PaymentReceiptListResponse struct {
	Receipts []PaymentReceiptResponse `json:"receipts"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Create records a new payment receipt. When a demand note is referenced it
// must belong to the same booking and already be issued.
func (s *PaymentReceiptService) Create(req *CreatePaymentReceiptRequest, actor string) (*PaymentReceiptResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Mode.IsValid() {
		return nil, apperrors.NewValidationError("mode", "must be one of cash, cheque, transfer, upi")
	}

	if _, err := s.bookingRepo.GetByID(req.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	exists, err := s.repo.ExistsByReceiptNo(req.ReceiptNo)
	if err != nil {
		return nil, fmt.Errorf("failed to check receipt number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPaymentReceiptExists
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, apperrors.NewValidationError("amount", "must be greater than zero")
	}

	receivedAt, err := time.Parse(time.RFC3339, req.ReceivedAt)
	if err != nil {
		return nil, apperrors.NewValidationError("received_at", "must be an RFC3339 timestamp")
	}

	if req.DemandNoteID != nil {
		note, err := s.demandNoteRepo.GetByID(*req.DemandNoteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDemandNoteNotFound
			}
			return nil, fmt.Errorf("failed to get demand note: %w", err)
		}
		if note.BookingID != req.BookingID {
			return nil, apperrors.NewValidationError("demand_note_id", "belongs to a different booking")
		}
		if note.Status != models.DemandNoteStatusIssued {
			return nil, apperrors.ErrDemandNoteNotIssued
		}
	}

	receipt := &models.PaymentReceipt{
		BookingID:    req.BookingID,
		DemandNoteID: req.DemandNoteID,
		ReceiptNo:    req.ReceiptNo,
		Amount:       amount,
		Mode:         req.Mode,
		ReferenceNo:  req.ReferenceNo,
		ReceivedAt:   receivedAt,
	}
	receipt.CreatedBy = actor
	receipt.UpdatedBy = actor

	if err := s.repo.Create(receipt); err != nil {
		return nil, fmt.Errorf("failed to create payment receipt: %w", err)
	}

	return s.toResponse(receipt), nil
}

// GetByID retrieves a payment receipt by ID
func (s *PaymentReceiptService) GetByID(id uuid.UUID) (*PaymentReceiptResponse, error) {
	receipt, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get payment receipt: %w", err)
	}
	return s.toResponse(receipt), nil
}

// ListByBooking retrieves receipts of a booking with pagination
func (s *PaymentReceiptService) ListByBooking(bookingID uuid.UUID, page, pageSize int) (*PaymentReceiptListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if _, err := s.bookingRepo.GetByID(bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	offset := (page - 1) * pageSize
	receipts, total, err := s.repo.GetByBookingID(bookingID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment receipts: %w", err)
	}

	responses := make([]PaymentReceiptResponse, len(receipts))
	for i, receipt := range receipts {
		responses[i] = *s.toResponse(&receipt)
	}

	return &PaymentReceiptListResponse{
		Receipts: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toResponse converts a payment receipt model to response
func (s *PaymentReceiptService) toResponse(receipt *models.PaymentReceipt) *PaymentReceiptResponse {
	return &PaymentReceiptResponse{
		ID:           receipt.ID,
		BookingID:    receipt.BookingID,
		DemandNoteID: receipt.DemandNoteID,
		ReceiptNo:    receipt.ReceiptNo,
		Amount:       receipt.Amount.StringFixed(2),
		Mode:         receipt.Mode,
		ReferenceNo:  receipt.ReferenceNo,
		ReceivedAt:   receipt.ReceivedAt.Format(time.RFC3339),
	}
}
