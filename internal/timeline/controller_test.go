package timeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"realty-crm-backend/internal/mocks"
	"realty-crm-backend/internal/stagegraph"
	"realty-crm-backend/internal/timeline"
	"realty-crm-backend/internal/viewmode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ControllerTestSuite defines the test suite for the timeline controller
type ControllerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	api     *mocks.MockMutationAPI
	notices []timeline.Notice
	refresh int

	booking    timeline.Booking
	bookingSt  stagegraph.Stage
	kycSt      stagegraph.Stage
	registered stagegraph.Stage
}

// SetupTest sets up the test suite
func (suite *ControllerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.api = mocks.NewMockMutationAPI(suite.ctrl)
	suite.notices = nil
	suite.refresh = 0

	suite.booking = timeline.Booking{ID: uuid.New(), Code: "BK-1001"}
	suite.bookingSt = stagegraph.Stage{ID: uuid.New(), Name: "Booking", Order: 1}
	suite.kycSt = stagegraph.Stage{ID: uuid.New(), Name: "KYC", Order: 2}
	suite.registered = stagegraph.Stage{ID: uuid.New(), Name: "Registered", Order: 3}
}

// TearDownTest cleans up after each test
func (suite *ControllerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// newController builds a controller wired to the suite's capture callbacks
func (suite *ControllerTestSuite) newController(mode viewmode.Mode) *timeline.Controller {
	c := timeline.NewController(suite.api, suite.booking, mode,
		func() { suite.refresh++ },
		func(n timeline.Notice) { suite.notices = append(suite.notices, n) },
	)
	c.SetSnapshot(suite.kycSnapshot())
	return c
}

// kycSnapshot returns a snapshot with current stage KYC and one recorded
// transition from Booking into KYC
func (suite *ControllerTestSuite) kycSnapshot() timeline.Snapshot {
	current := suite.kycSt
	return timeline.Snapshot{
		Stages:       []stagegraph.Stage{suite.bookingSt, suite.kycSt, suite.registered},
		CurrentStage: &current,
		History: []timeline.HistoryEntry{
			{
				At:        time.Now().Add(-time.Hour),
				FromStage: &suite.bookingSt,
				ToStage:   suite.kycSt,
				ChangedBy: "ops@realty.test",
			},
		},
		RegistrationExists: true,
	}
}

func (suite *ControllerTestSuite) lastNotice() timeline.Notice {
	suite.Require().NotEmpty(suite.notices)
	return suite.notices[len(suite.notices)-1]
}

// TestReadOnlyLockout verifies that no write affordance opens a dialog in
// read-only mode
func (suite *ControllerTestSuite) TestReadOnlyLockout() {
	c := suite.newController(viewmode.ModeReadOnly)

	c.RequestStageChange(suite.registered)
	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())
	assert.Equal(suite.T(), timeline.NoticeInfo, suite.lastNotice().Level)

	c.RequestShift()
	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())
	assert.Len(suite.T(), suite.notices, 2)
}

// TestIllegalStageClick verifies a backward click produces a rejection
// notice, no dialog and no network call
func (suite *ControllerTestSuite) TestIllegalStageClick() {
	c := suite.newController(viewmode.ModeEditable)

	c.RequestStageChange(suite.bookingSt)

	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())
	assert.Equal(suite.T(), timeline.NoticeInfo, suite.lastNotice().Level)
}

// TestShiftAlreadyShifted verifies the shift control is a no-op with a
// notice when the booking is already shifted
func (suite *ControllerTestSuite) TestShiftAlreadyShifted() {
	suite.booking.IsShifted = true
	c := suite.newController(viewmode.ModeEditable)

	c.RequestShift()

	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())
	assert.Contains(suite.T(), suite.lastNotice().Message, "already")
}

// TestNormalAdvance verifies the full click → confirm → submit → refresh
// flow
func (suite *ControllerTestSuite) TestNormalAdvance() {
	c := suite.newController(viewmode.ModeEditable)

	c.RequestStageChange(suite.registered)
	assert.Equal(suite.T(), timeline.StateConfirmPending, c.State())
	confirmation := c.Confirmation()
	suite.Require().NotNil(confirmation)
	assert.Equal(suite.T(), timeline.ConfirmationStage, confirmation.Type)
	assert.Equal(suite.T(), suite.registered.ID, confirmation.TargetStage.ID)

	c.SetNote("registry slot booked")

	suite.api.EXPECT().
		AdvanceStage(gomock.Any(), timeline.AdvanceStageRequest{
			BookingID: suite.booking.ID,
			StageID:   suite.registered.ID,
			Note:      "registry slot booked",
		}).
		Return(nil)

	c.ConfirmSubmit(context.Background())

	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())
	assert.False(suite.T(), c.StageBusy(suite.registered.ID))
	assert.Equal(suite.T(), 1, suite.refresh)
	assert.Equal(suite.T(), timeline.NoticeSuccess, suite.lastNotice().Level)
}

// TestBusyDuringFlight verifies the per-target busy flag is set while the
// mutation is in flight and the dialog shows the submitting state
func (suite *ControllerTestSuite) TestBusyDuringFlight() {
	c := suite.newController(viewmode.ModeEditable)
	c.RequestStageChange(suite.registered)

	suite.api.EXPECT().
		AdvanceStage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req timeline.AdvanceStageRequest) error {
			assert.True(suite.T(), c.StageBusy(suite.registered.ID))
			assert.False(suite.T(), c.StageBusy(suite.kycSt.ID), "other stages stay independently actionable")
			assert.True(suite.T(), c.View(false).Dialog.Submitting)
			return nil
		})

	c.ConfirmSubmit(context.Background())

	assert.False(suite.T(), c.StageBusy(suite.registered.ID))
}

// TestSubmitFailureClearsBusy verifies a failed submit clears the busy
// flag, closes the dialog and surfaces the server detail message
func (suite *ControllerTestSuite) TestSubmitFailureClearsBusy() {
	c := suite.newController(viewmode.ModeEditable)
	c.RequestStageChange(suite.registered)

	suite.api.EXPECT().
		AdvanceStage(gomock.Any(), gomock.Any()).
		Return(&timeline.SubmitError{Detail: "registration is locked for this project"})

	c.ConfirmSubmit(context.Background())

	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())
	assert.False(suite.T(), c.StageBusy(suite.registered.ID))
	assert.Equal(suite.T(), 0, suite.refresh)
	notice := suite.lastNotice()
	assert.Equal(suite.T(), timeline.NoticeError, notice.Level)
	assert.Equal(suite.T(), "registration is locked for this project", notice.Message)

	// Flow can be re-initiated after a failure.
	c.RequestStageChange(suite.registered)
	assert.Equal(suite.T(), timeline.StateConfirmPending, c.State())
}

// TestSubmitFailureFieldFallback verifies message extraction falls back
// through field errors and then a generic message
func (suite *ControllerTestSuite) TestSubmitFailureFieldFallback() {
	c := suite.newController(viewmode.ModeEditable)

	c.RequestStageChange(suite.registered)
	suite.api.EXPECT().
		AdvanceStage(gomock.Any(), gomock.Any()).
		Return(&timeline.SubmitError{Fields: map[string]string{"stage_id": "unknown stage"}})
	c.ConfirmSubmit(context.Background())
	assert.Equal(suite.T(), "stage_id: unknown stage", suite.lastNotice().Message)

	c.RequestStageChange(suite.registered)
	suite.api.EXPECT().
		AdvanceStage(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))
	c.ConfirmSubmit(context.Background())
	assert.Equal(suite.T(), timeline.NoticeError, suite.lastNotice().Level)
	assert.NotContains(suite.T(), suite.lastNotice().Message, "connection reset")
}

// TestShiftFlow verifies the shift confirmation and submission path
func (suite *ControllerTestSuite) TestShiftFlow() {
	c := suite.newController(viewmode.ModeEditable)

	c.RequestShift()
	assert.Equal(suite.T(), timeline.StateConfirmPending, c.State())
	confirmation := c.Confirmation()
	suite.Require().NotNil(confirmation)
	assert.Equal(suite.T(), timeline.ConfirmationShift, confirmation.Type)

	c.SetNote("moved to tower B")
	suite.api.EXPECT().
		ShiftBooking(gomock.Any(), timeline.ShiftBookingRequest{
			BookingID: suite.booking.ID,
			Note:      "moved to tower B",
		}).
		Return(nil)

	c.ConfirmSubmit(context.Background())

	assert.False(suite.T(), c.ShiftBusy())
	assert.Equal(suite.T(), 1, suite.refresh)
	assert.Equal(suite.T(), timeline.NoticeSuccess, suite.lastNotice().Level)
}

// TestCancelConfirmation verifies cancel discards the pending request and
// note text
func (suite *ControllerTestSuite) TestCancelConfirmation() {
	c := suite.newController(viewmode.ModeEditable)

	c.RequestStageChange(suite.registered)
	c.SetNote("draft note")
	c.CancelConfirmation()

	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())

	// A fresh confirmation starts with an empty note.
	c.RequestStageChange(suite.registered)
	confirmation := c.Confirmation()
	suite.Require().NotNil(confirmation)
	assert.Empty(suite.T(), confirmation.Note)
}

// TestReadOnlyRecheckAtSubmit verifies a stale render cannot submit after
// the mode flips to read-only
func (suite *ControllerTestSuite) TestReadOnlyRecheckAtSubmit() {
	c := suite.newController(viewmode.ModeEditable)

	c.RequestStageChange(suite.registered)
	c.SetMode(viewmode.ModeReadOnly)

	c.ConfirmSubmit(context.Background())

	assert.Equal(suite.T(), timeline.StateIdle, c.State())
	assert.Nil(suite.T(), c.Confirmation())
	assert.Equal(suite.T(), timeline.NoticeInfo, suite.lastNotice().Level)
	assert.Equal(suite.T(), 0, suite.refresh)
}

// TestDialogIsModal verifies a second confirmation cannot be opened while
// one is pending
func (suite *ControllerTestSuite) TestDialogIsModal() {
	c := suite.newController(viewmode.ModeEditable)

	c.RequestStageChange(suite.registered)
	first := c.Confirmation()
	suite.Require().NotNil(first)

	c.RequestShift()
	second := c.Confirmation()
	suite.Require().NotNil(second)
	assert.Equal(suite.T(), first.Type, second.Type)
	assert.Equal(suite.T(), first.TargetStage.ID, second.TargetStage.ID)
}

// TestNoticeCallbackCanRender verifies the notify callback may call back
// into the controller, as a UI handler re-rendering on every notice does.
// Each rejection path that emits a notice must have released the mutex
// first or this test deadlocks.
func (suite *ControllerTestSuite) TestNoticeCallbackCanRender() {
	var c *timeline.Controller
	var views []timeline.View
	c = timeline.NewController(suite.api, suite.booking, viewmode.ModeReadOnly,
		func() { suite.refresh++ },
		func(n timeline.Notice) {
			suite.notices = append(suite.notices, n)
			views = append(views, c.View(false))
		},
	)
	c.SetSnapshot(suite.kycSnapshot())

	c.RequestStageChange(suite.registered)
	c.RequestShift()

	c.SetMode(viewmode.ModeEditable)
	c.RequestStageChange(suite.bookingSt)

	suite.booking.IsShifted = true
	c.SetBooking(suite.booking)
	c.RequestShift()

	suite.Require().Len(suite.notices, 4)
	suite.Require().Len(views, 4)
	for _, v := range views {
		assert.False(suite.T(), v.Dialog.Visible)
	}
	assert.Equal(suite.T(), timeline.StateIdle, c.State())
}

// TestNoRegistrationStart verifies only the minimum-order stage is
// selectable before registration starts
func (suite *ControllerTestSuite) TestNoRegistrationStart() {
	c := suite.newController(viewmode.ModeEditable)
	c.SetSnapshot(timeline.Snapshot{
		Stages: []stagegraph.Stage{suite.bookingSt, suite.kycSt, suite.registered},
	})

	c.RequestStageChange(suite.kycSt)
	assert.Equal(suite.T(), timeline.StateIdle, c.State())

	c.RequestStageChange(suite.bookingSt)
	assert.Equal(suite.T(), timeline.StateConfirmPending, c.State())
}

// Run the test suite
func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}
