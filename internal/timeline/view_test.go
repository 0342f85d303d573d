package timeline_test

import (
	"testing"
	"time"

	"realty-crm-backend/internal/stagegraph"
	"realty-crm-backend/internal/timeline"
	"realty-crm-backend/internal/viewmode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewFixture(t *testing.T, mode viewmode.Mode) (*timeline.Controller, []stagegraph.Stage) {
	t.Helper()

	booking := stagegraph.Stage{ID: uuid.New(), Name: "Booking", Order: 1}
	kyc := stagegraph.Stage{ID: uuid.New(), Name: "KYC", Order: 2}
	registered := stagegraph.Stage{ID: uuid.New(), Name: "Registered", Order: 3}
	stages := []stagegraph.Stage{booking, kyc, registered}

	current := kyc
	c := timeline.NewController(nil, timeline.Booking{ID: uuid.New(), Code: "BK-2002"}, mode, nil, nil)
	c.SetSnapshot(timeline.Snapshot{
		Stages:       stages,
		CurrentStage: &current,
		History: []timeline.HistoryEntry{
			{
				At:        time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
				FromStage: &booking,
				ToStage:   kyc,
				ChangedBy: "ops@realty.test",
				Note:      "documents verified",
			},
			{
				At:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
				ToStage:   booking,
				ChangedBy: "sales@realty.test",
			},
		},
		RegistrationExists: true,
	})
	return c, stages
}

func TestViewLoading(t *testing.T) {
	c, _ := viewFixture(t, viewmode.ModeEditable)

	view := c.View(true)

	assert.True(t, view.Loading)
	assert.Empty(t, view.Nodes)
	assert.Empty(t, view.History)
}

func TestViewEmptyStageSet(t *testing.T) {
	c := timeline.NewController(nil, timeline.Booking{ID: uuid.New()}, viewmode.ModeEditable, nil, nil)
	c.SetSnapshot(timeline.Snapshot{})

	view := c.View(false)

	assert.True(t, view.Empty)
	assert.Empty(t, view.Nodes)
}

func TestViewStageBar(t *testing.T) {
	c, stages := viewFixture(t, viewmode.ModeEditable)

	view := c.View(false)
	require.Len(t, view.Nodes, 3)

	assert.Equal(t, stagegraph.ClassificationVisited, view.Nodes[0].Classification)
	assert.Equal(t, stagegraph.ClassificationCurrent, view.Nodes[1].Classification)
	assert.Equal(t, stagegraph.ClassificationPending, view.Nodes[2].Classification)

	assert.False(t, view.Nodes[0].Clickable, "backward stage is not clickable")
	assert.False(t, view.Nodes[1].Clickable, "current stage is not clickable")
	assert.True(t, view.Nodes[2].Clickable, "forward stage is clickable")

	assert.Equal(t, stages[2].Name, view.Nodes[2].Stage.Name)
	assert.Equal(t, "BK-2002", view.BookingLabel)
}

func TestViewReadOnly(t *testing.T) {
	c, _ := viewFixture(t, viewmode.ModeReadOnly)

	view := c.View(false)

	assert.True(t, view.ReadOnly)
	for _, node := range view.Nodes {
		assert.False(t, node.Clickable)
	}
	assert.False(t, view.ShiftEnabled)
	assert.False(t, view.Dialog.Visible)
}

func TestViewHistoryRows(t *testing.T) {
	c, _ := viewFixture(t, viewmode.ModeEditable)

	view := c.View(false)
	require.Len(t, view.History, 2)

	// Rows keep the snapshot's reverse-chronological order.
	assert.Equal(t, "KYC", view.History[0].ToStage)
	assert.Equal(t, "Booking", view.History[0].FromStage)
	assert.Equal(t, "documents verified", view.History[0].Note)
	assert.Equal(t, "Booking", view.History[1].ToStage)
	assert.Empty(t, view.History[1].FromStage, "initial entry has no from stage")
}

func TestViewConfirmationDialog(t *testing.T) {
	c, stages := viewFixture(t, viewmode.ModeEditable)

	assert.False(t, c.View(false).Dialog.Visible)

	c.RequestStageChange(stages[2])
	c.SetNote("ready for registry")

	view := c.View(false)
	assert.True(t, view.Dialog.Visible)
	assert.Equal(t, timeline.ConfirmationStage, view.Dialog.Type)
	assert.Equal(t, "Registered", view.Dialog.TargetName)
	assert.Equal(t, "ready for registry", view.Dialog.Note)
	assert.False(t, view.Dialog.Submitting)

	c.CancelConfirmation()
	assert.False(t, c.View(false).Dialog.Visible)
}

func TestViewShiftControl(t *testing.T) {
	c, _ := viewFixture(t, viewmode.ModeEditable)

	assert.True(t, c.View(false).ShiftEnabled)

	c.SetBooking(timeline.Booking{ID: uuid.New(), Code: "BK-2002", IsShifted: true})
	assert.False(t, c.View(false).ShiftEnabled)
}
