package repository

import (
	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentReceiptRepository handles database operations for payment receipts
type PaymentReceiptRepository struct {
	db *gorm.DB
}

// NewPaymentReceiptRepository creates a new payment receipt repository
func NewPaymentReceiptRepository(db *gorm.DB) *PaymentReceiptRepository {
	return &PaymentReceiptRepository{db: db}
}

// Create creates a new payment receipt
func (r *PaymentReceiptRepository) Create(receipt *models.PaymentReceipt) error {
	return r.db.Create(receipt).Error
}

// GetByID retrieves a payment receipt by ID
func (r *PaymentReceiptRepository) GetByID(id uuid.UUID) (*models.PaymentReceipt, error) {
	var receipt models.PaymentReceipt
	err := r.db.First(&receipt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// GetByBookingID retrieves receipts of a booking with pagination
func (r *PaymentReceiptRepository) GetByBookingID(bookingID uuid.UUID, limit, offset int) ([]models.PaymentReceipt, int64, error) {
	var receipts []models.PaymentReceipt
	var total int64

	if err := r.db.Model(&models.PaymentReceipt{}).Where("booking_id = ?", bookingID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("booking_id = ?", bookingID).Order("received_at DESC").Limit(limit).Offset(offset).Find(&receipts).Error
	return receipts, total, err
}

// ExistsByReceiptNo checks whether a receipt with the number exists
func (r *PaymentReceiptRepository) ExistsByReceiptNo(receiptNo string) (bool, error) {
	var count int64
	err := r.db.Model(&models.PaymentReceipt{}).Where("receipt_no = ?", receiptNo).Count(&count).Error
	return count > 0, err
}
