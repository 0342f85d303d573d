package timeline

import (
	"realty-crm-backend/internal/stagegraph"

	"github.com/google/uuid"
)

// StageNode is one node of the horizontal stage bar.
type StageNode struct {
	Stage          stagegraph.Stage          `json:"stage"`
	Classification stagegraph.Classification `json:"classification"`
	Clickable      bool                      `json:"clickable"`
	Busy           bool                      `json:"busy"`
}

// HistoryRow is one rendered line of the audit table, reverse-chronological
// as supplied by the snapshot.
type HistoryRow struct {
	At        string `json:"at"`
	FromStage string `json:"from_stage"`
	ToStage   string `json:"to_stage"`
	ChangedBy string `json:"changed_by"`
	Note      string `json:"note"`
}

// DialogView describes the confirmation dialog. Visible only when a
// confirmation is pending and the view is not read-only.
type DialogView struct {
	Visible    bool             `json:"visible"`
	Type       ConfirmationType `json:"type,omitempty"`
	TargetName string           `json:"target_name,omitempty"`
	Note       string           `json:"note,omitempty"`
	Submitting bool             `json:"submitting"`
}

// View is the complete render model of the timeline. It is a pure
// projection of controller state and holds no behavior of its own.
type View struct {
	BookingLabel string       `json:"booking_label"`
	Loading      bool         `json:"loading"`
	Empty        bool         `json:"empty"`
	ReadOnly     bool         `json:"read_only"`
	Nodes        []StageNode  `json:"nodes"`
	History      []HistoryRow `json:"history"`
	ShiftEnabled bool         `json:"shift_enabled"`
	ShiftBusy    bool         `json:"shift_busy"`
	Dialog       DialogView   `json:"dialog"`
}

// View renders the current controller state. When loading is true only the
// loading placeholder is populated; when the snapshot has no stages the
// empty state is flagged and the stage bar is omitted.
func (c *Controller) View(loading bool) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := View{
		BookingLabel: bookingLabel(c.booking),
		ReadOnly:     c.mode.ReadOnly(),
	}

	if loading {
		view.Loading = true
		return view
	}

	if len(c.snapshot.Stages) == 0 {
		view.Empty = true
		return view
	}

	transitions := c.snapshot.Transitions()
	view.Nodes = make([]StageNode, len(c.snapshot.Stages))
	for i, stage := range c.snapshot.Stages {
		view.Nodes[i] = StageNode{
			Stage:          stage,
			Classification: stagegraph.Classify(c.snapshot.CurrentStage, transitions, stage),
			Clickable:      !c.mode.ReadOnly() && stagegraph.TransitionAllowed(c.snapshot.Stages, c.snapshot.CurrentStage, stage),
			Busy:           c.busyStages[stage.ID],
		}
	}

	view.History = make([]HistoryRow, len(c.snapshot.History))
	for i, entry := range c.snapshot.History {
		row := HistoryRow{
			At:        entry.At.Format("2006-01-02T15:04:05Z07:00"),
			ToStage:   entry.ToStage.Name,
			ChangedBy: entry.ChangedBy,
			Note:      entry.Note,
		}
		if entry.FromStage != nil {
			row.FromStage = entry.FromStage.Name
		}
		view.History[i] = row
	}

	view.ShiftEnabled = !c.mode.ReadOnly() && !c.booking.IsShifted && !c.shiftBusy
	view.ShiftBusy = c.shiftBusy

	if c.confirmation != nil && !c.mode.ReadOnly() {
		view.Dialog = DialogView{
			Visible:    true,
			Type:       c.confirmation.Type,
			Note:       c.confirmation.Note,
			Submitting: c.state == StateSubmitting,
		}
		if c.confirmation.TargetStage != nil {
			view.Dialog.TargetName = c.confirmation.TargetStage.Name
		}
	}

	return view
}

func bookingLabel(b Booking) string {
	if b.Code != "" {
		return b.Code
	}
	if b.FormRefNo != "" {
		return b.FormRefNo
	}
	if b.ID == uuid.Nil {
		return ""
	}
	return b.ID.String()
}
