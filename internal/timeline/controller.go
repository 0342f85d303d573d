// Package timeline implements the interactive registration stage
// progression workflow: a forward-only stage bar with a confirmation step
// before every mutation, per-target busy locking, and non-blocking notices
// for every guard rejection or submission failure.
package timeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"realty-crm-backend/internal/logger"
	"realty-crm-backend/internal/stagegraph"
	"realty-crm-backend/internal/viewmode"

	"github.com/google/uuid"
)

// State is the controller's position in the confirmation flow.
type State string

const (
	StateIdle           State = "idle"
	StateConfirmPending State = "confirm_pending"
	StateSubmitting     State = "submitting"
)

// ConfirmationType identifies which write intent is awaiting confirmation.
type ConfirmationType string

const (
	ConfirmationStage ConfirmationType = "stage"
	ConfirmationShift ConfirmationType = "shift"
)

// Confirmation is the transient request created when the user initiates an
// action. It is discarded on cancel and on completion, never persisted.
type Confirmation struct {
	Type        ConfirmationType
	TargetStage *stagegraph.Stage
	Note        string
}

// User-facing notice messages.
const (
	msgReadOnly             = "Timeline is read-only in this view"
	msgTransitionNotAllowed = "This stage cannot be selected from the current stage"
	msgAlreadyShifted       = "Booking is already marked as shifted"
	msgStageAdvanced        = "Registration stage updated"
	msgBookingShifted       = "Booking marked as shifted"
	msgGenericFailure       = "Something went wrong, please try again"
)

// SubmitError is the structured error payload a failed mutation carries.
// Message extraction walks Detail first, then field errors, then falls
// back to a generic message.
type SubmitError struct {
	Detail string
	Fields map[string]string
}

func (e *SubmitError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "submit failed"
}

// Controller drives the stage progression flow for one booking. It holds
// no authoritative data: the snapshot is a projection of server state and
// is replaced wholesale after every successful mutation via the refresh
// callback. The zero-value callbacks are allowed and treated as no-ops.
//
// Controller is safe for concurrent use; the mutex is released around the
// mutation call so other targets stay independently actionable while one
// submission is in flight.
type Controller struct {
	api MutationAPI
	log *logger.Logger

	onRefresh func()
	notify    func(Notice)

	mu           sync.Mutex
	mode         viewmode.Mode
	booking      Booking
	snapshot     Snapshot
	state        State
	confirmation *Confirmation
	busyStages   map[uuid.UUID]bool
	shiftBusy    bool
}

// NewController creates a controller for one booking in the given view
// mode. onRefresh is invoked after every successful mutation and must
// re-fetch and push an updated snapshot via SetSnapshot; notify receives
// every transient notice.
func NewController(api MutationAPI, booking Booking, mode viewmode.Mode, onRefresh func(), notify func(Notice)) *Controller {
	if onRefresh == nil {
		onRefresh = func() {}
	}
	if notify == nil {
		notify = func(Notice) {}
	}
	return &Controller{
		api:        api,
		log:        logger.New().WithField("booking_id", booking.ID),
		onRefresh:  onRefresh,
		notify:     notify,
		mode:       mode,
		booking:    booking,
		state:      StateIdle,
		busyStages: make(map[uuid.UUID]bool),
	}
}

// SetSnapshot replaces the timeline read model, typically in response to
// the refresh callback or the initial fetch.
func (c *Controller) SetSnapshot(snapshot Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snapshot
}

// SetMode replaces the view mode, for when the composition layer
// re-resolves the viewing context. Read-only is still re-checked at the
// point of submission, so a stale render can never submit a write.
func (c *Controller) SetMode(mode viewmode.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

// SetBooking replaces the booking projection supplied by the parent.
func (c *Controller) SetBooking(booking Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.booking = booking
}

// State returns the controller's position in the confirmation flow.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Confirmation returns a copy of the pending confirmation, or nil.
func (c *Controller) Confirmation() *Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.confirmation == nil {
		return nil
	}
	confirmation := *c.confirmation
	return &confirmation
}

// StageBusy reports whether a submission against the given stage is in
// flight.
func (c *Controller) StageBusy(stageID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busyStages[stageID]
}

// ShiftBusy reports whether the shift mutation is in flight.
func (c *Controller) ShiftBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shiftBusy
}

// RequestStageChange opens the confirmation dialog for a move to stage.
// Rejected with a notice and no state change when the view is read-only,
// the transition is not allowed, the stage is mid-submission, or another
// confirmation is already pending (the dialog is modal). The notice is
// emitted after the mutex is released; the callback may call back into
// the controller.
func (c *Controller) RequestStageChange(stage stagegraph.Stage) {
	c.mu.Lock()

	if c.mode.ReadOnly() {
		c.mu.Unlock()
		c.notify(Notice{Level: NoticeInfo, Message: msgReadOnly})
		return
	}
	if c.state != StateIdle || c.busyStages[stage.ID] {
		c.mu.Unlock()
		return
	}
	if !stagegraph.TransitionAllowed(c.snapshot.Stages, c.snapshot.CurrentStage, stage) {
		c.mu.Unlock()
		c.notify(Notice{Level: NoticeInfo, Message: msgTransitionNotAllowed})
		return
	}

	target := stage
	c.confirmation = &Confirmation{Type: ConfirmationStage, TargetStage: &target}
	c.state = StateConfirmPending
	c.mu.Unlock()
}

// RequestShift opens the confirmation dialog for the one-shot shift
// action. Rejected with a notice when read-only or already shifted; as in
// RequestStageChange, notices go out without the mutex held.
func (c *Controller) RequestShift() {
	c.mu.Lock()

	if c.mode.ReadOnly() {
		c.mu.Unlock()
		c.notify(Notice{Level: NoticeInfo, Message: msgReadOnly})
		return
	}
	if c.state != StateIdle {
		c.mu.Unlock()
		return
	}
	if c.booking.IsShifted {
		c.mu.Unlock()
		c.notify(Notice{Level: NoticeInfo, Message: msgAlreadyShifted})
		return
	}
	if c.shiftBusy {
		c.mu.Unlock()
		return
	}

	c.confirmation = &Confirmation{Type: ConfirmationShift}
	c.state = StateConfirmPending
	c.mu.Unlock()
}

// SetNote updates the free-text note on the pending confirmation.
func (c *Controller) SetNote(note string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.confirmation != nil {
		c.confirmation.Note = note
	}
}

// CancelConfirmation returns to idle, discarding the pending request and
// any note text.
func (c *Controller) CancelConfirmation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConfirmPending {
		return
	}
	c.confirmation = nil
	c.state = StateIdle
}

// ConfirmSubmit dispatches the pending mutation. Read-only mode is
// re-checked here so a stale render can never submit a write. The target's
// busy flag is set for the duration of the call and cleared on success and
// failure alike; on success the dialog closes and a refresh is triggered,
// on failure the dialog closes and the extracted error message is surfaced
// as a notice so the flow can be re-initiated.
func (c *Controller) ConfirmSubmit(ctx context.Context) {
	c.mu.Lock()

	if c.state != StateConfirmPending || c.confirmation == nil {
		c.mu.Unlock()
		return
	}
	if c.mode.ReadOnly() {
		c.confirmation = nil
		c.state = StateIdle
		c.mu.Unlock()
		c.notify(Notice{Level: NoticeInfo, Message: msgReadOnly})
		return
	}

	confirmation := *c.confirmation
	booking := c.booking
	c.state = StateSubmitting
	c.markBusy(confirmation, true)
	c.mu.Unlock()

	var err error
	var successMsg string
	switch confirmation.Type {
	case ConfirmationShift:
		err = c.api.ShiftBooking(ctx, ShiftBookingRequest{
			BookingID: booking.ID,
			Note:      confirmation.Note,
		})
		successMsg = msgBookingShifted
	default:
		err = c.api.AdvanceStage(ctx, AdvanceStageRequest{
			BookingID: booking.ID,
			StageID:   confirmation.TargetStage.ID,
			Note:      confirmation.Note,
		})
		successMsg = msgStageAdvanced
	}

	c.mu.Lock()
	c.markBusy(confirmation, false)
	c.confirmation = nil
	c.state = StateIdle
	c.mu.Unlock()

	if err != nil {
		c.log.WithField("type", string(confirmation.Type)).Warnf("timeline mutation failed: %v", err)
		c.notify(Notice{Level: NoticeError, Message: extractSubmitMessage(err)})
		return
	}

	c.notify(Notice{Level: NoticeSuccess, Message: successMsg})
	c.onRefresh()
}

// markBusy toggles the busy flag for the confirmation's target. Caller
// must hold the mutex.
func (c *Controller) markBusy(confirmation Confirmation, busy bool) {
	if confirmation.Type == ConfirmationShift {
		c.shiftBusy = busy
		return
	}
	if confirmation.TargetStage != nil {
		if busy {
			c.busyStages[confirmation.TargetStage.ID] = true
		} else {
			delete(c.busyStages, confirmation.TargetStage.ID)
		}
	}
}

// extractSubmitMessage walks the ordered list of possible error fields on
// a structured submit error and falls back to a generic message.
func extractSubmitMessage(err error) string {
	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		if submitErr.Detail != "" {
			return submitErr.Detail
		}
		if len(submitErr.Fields) > 0 {
			keys := make([]string, 0, len(submitErr.Fields))
			for k := range submitErr.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			return fmt.Sprintf("%s: %s", keys[0], submitErr.Fields[keys[0]])
		}
	}
	return msgGenericFailure
}
