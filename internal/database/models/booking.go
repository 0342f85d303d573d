package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking represents a unit booking within a project. IsShifted is a
// one-shot administrative flag; once set it is never cleared through the
// API.
type Booking struct {
	BaseModel
	ProjectID     uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	BookingCode   string          `json:"booking_code" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	FormRefNo     string          `json:"form_ref_no" gorm:"size:40" validate:"max=40"`
	CustomerName  string          `json:"customer_name" gorm:"size:120;not null" validate:"required,max=120"`
	CustomerPhone string          `json:"customer_phone" gorm:"size:20" validate:"max=20"`
	CustomerEmail string          `json:"customer_email" gorm:"size:120" validate:"omitempty,email,max=120"`
	UnitNo        string          `json:"unit_no" gorm:"size:40" validate:"max=40"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(14,2)"`
	IsShifted     bool            `json:"is_shifted" gorm:"default:false"`
	ShiftNote     string          `json:"shift_note" gorm:"size:500" validate:"max=500"`

	// Relationships
	Project Project        `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	History []StageHistory `json:"history,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
