package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemandNote represents a post-sales payment demand raised against a
// booking.
type DemandNote struct {
	BaseModel
	BookingID uuid.UUID        `json:"booking_id" gorm:"type:uuid;not null;index" validate:"required"`
	NoteNo    string           `json:"note_no" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	Amount    decimal.Decimal  `json:"amount" gorm:"type:numeric(14,2);not null"`
	DueDate   time.Time        `json:"due_date" gorm:"type:date;not null" validate:"required"`
	Status    DemandNoteStatus `json:"status" gorm:"size:20;not null;default:'draft'"`
	Remarks   string           `json:"remarks" gorm:"size:500" validate:"max=500"`

	// Relationships
	Booking Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DemandNote
func (DemandNote) TableName() string {
	return "demand_notes"
}
