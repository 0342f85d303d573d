package timeline

import (
	"context"
	"time"

	"realty-crm-backend/internal/stagegraph"

	"github.com/google/uuid"
)

//go:generate mockgen -source=types.go -destination=../mocks/timeline_mocks.go -package=mocks

// Booking is the read-only slice of a booking the timeline needs.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"booking_code"`
	FormRefNo string    `json:"form_ref_no"`
	IsShifted bool      `json:"is_shifted"`
}

// HistoryEntry is one immutable audit record of a stage transition.
type HistoryEntry struct {
	At        time.Time         `json:"at"`
	FromStage *stagegraph.Stage `json:"from_stage,omitempty"`
	ToStage   stagegraph.Stage  `json:"to_stage"`
	ChangedBy string            `json:"changed_by"`
	Note      string            `json:"note,omitempty"`
}

// Snapshot is the read model for one booking's registration timeline. It is
// fetched fresh on open and after every successful mutation; the controller
// never mutates it beyond replacing it wholesale.
type Snapshot struct {
	Stages             []stagegraph.Stage `json:"stages"`
	CurrentStage       *stagegraph.Stage  `json:"current_stage,omitempty"`
	History            []HistoryEntry     `json:"history"`
	RegistrationExists bool               `json:"registration_exists"`
}

// Transitions projects the snapshot history into the minimal form the
// stage graph needs for classification.
func (s Snapshot) Transitions() []stagegraph.Transition {
	transitions := make([]stagegraph.Transition, len(s.History))
	for i, entry := range s.History {
		transitions[i] = stagegraph.Transition{ToStageID: entry.ToStage.ID}
		if entry.FromStage != nil {
			fromID := entry.FromStage.ID
			transitions[i].FromStageID = &fromID
		}
	}
	return transitions
}

// AdvanceStageRequest is the payload for the stage-advance mutation.
type AdvanceStageRequest struct {
	BookingID uuid.UUID `json:"booking_id"`
	StageID   uuid.UUID `json:"stage_id"`
	Note      string    `json:"note"`
}

// ShiftBookingRequest is the payload for the mark-shifted mutation.
type ShiftBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id"`
	Note      string    `json:"note"`
}

// MutationAPI is the backend surface the controller writes through.
type MutationAPI interface {
	AdvanceStage(ctx context.Context, req AdvanceStageRequest) error
	ShiftBooking(ctx context.Context, req ShiftBookingRequest) error
}

// NoticeLevel classifies a transient user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient, non-blocking message surfaced to the user. It is
// never fatal to the workflow.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}
