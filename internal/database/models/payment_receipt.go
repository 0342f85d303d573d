package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentReceipt records a payment received against a booking, optionally
// settling a demand note.
type PaymentReceipt struct {
	BaseModel
	BookingID    uuid.UUID       `json:"booking_id" gorm:"type:uuid;not null;index" validate:"required"`
	DemandNoteID *uuid.UUID      `json:"demand_note_id,omitempty" gorm:"type:uuid;index"`
	ReceiptNo    string          `json:"receipt_no" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`
	Mode         PaymentMode     `json:"mode" gorm:"size:20;not null"`
	ReferenceNo  string          `json:"reference_no" gorm:"size:80" validate:"max=80"`
	ReceivedAt   time.Time       `json:"received_at" gorm:"not null"`

	// Relationships
	Booking    Booking     `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	DemandNote *DemandNote `json:"demand_note,omitempty" gorm:"foreignKey:DemandNoteID"`
}

// TableName returns the table name for PaymentReceipt
func (PaymentReceipt) TableName() string {
	return "payment_receipts"
}
