package models

import (
	"time"

	"github.com/google/uuid"
)

// StageHistory is the append-only audit log of registration stage
// transitions for a booking. FromStageID is null on the entry that starts
// the registration. Rows are written only by the advance operation and
// never updated or deleted.
type StageHistory struct {
	BaseModel
	BookingID   uuid.UUID  `json:"booking_id" gorm:"type:uuid;not null;index" validate:"required"`
	FromStageID *uuid.UUID `json:"from_stage_id,omitempty" gorm:"type:uuid"`
	ToStageID   uuid.UUID  `json:"to_stage_id" gorm:"type:uuid;not null" validate:"required"`
	ChangedBy   string     `json:"changed_by" gorm:"size:120;not null" validate:"required,max=120"`
	Note        string     `json:"note" gorm:"size:500" validate:"max=500"`
	ChangedAt   time.Time  `json:"changed_at" gorm:"not null;index"`

	// Relationships
	Booking   Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	FromStage *Stage  `json:"from_stage,omitempty" gorm:"foreignKey:FromStageID"`
	ToStage   Stage   `json:"to_stage,omitempty" gorm:"foreignKey:ToStageID"`
}

// TableName returns the table name for StageHistory
func (StageHistory) TableName() string {
	return "stage_histories"
}
