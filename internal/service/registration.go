package service

import (
	"errors"
	"fmt"
	"time"

	"realty-crm-backend/internal/database/models"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/repository"
	"realty-crm-backend/internal/stagegraph"
	"realty-crm-backend/internal/viewmode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationService handles the registration stage progression workflow
// for bookings: timeline reads, stage advances and the one-shot shift
// action. Transition legality is decided by the stage graph; the view
// mode is re-checked here so no write can slip through a stale client.
type RegistrationService struct {
	bookingRepo *repository.BookingRepository
	stageRepo   *repository.StageRepository
	historyRepo *repository.StageHistoryRepository
	validator   *validator.Validate
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	bookingRepo *repository.BookingRepository,
	stageRepo *repository.StageRepository,
	historyRepo *repository.StageHistoryRepository,
	validator *validator.Validate,
) *RegistrationService {
	return &RegistrationService{
		bookingRepo: bookingRepo,
		stageRepo:   stageRepo,
		historyRepo: historyRepo,
		validator:   validator,
	}
}

// AdvanceStageRequest represents the request to advance a booking's
// registration stage
type AdvanceStageRequest struct {
	StageID uuid.UUID `json:"stage_id" validate:"required"`
	Note    string    `json:"note" validate:"max=500"`
}

// ShiftBookingRequest represents the request to mark a booking as shifted
type ShiftBookingRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// TimelineStageResponse is one stage of the timeline read model
type TimelineStageResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Name           string                    `json:"name"`
	Order          int                       `json:"order"`
	Classification stagegraph.Classification `json:"classification"`
	Allowed        bool                      `json:"allowed"`
}

// TimelineHistoryResponse is one audit entry of the timeline read model.
// Stage IDs are authoritative; the names are denormalized for display and
// are not unique within a project.
type TimelineHistoryResponse struct {
	At          string     `json:"at"`
	FromStageID *uuid.UUID `json:"from_stage_id"`
	FromStage   *string    `json:"from_stage"`
	ToStageID   uuid.UUID  `json:"to_stage_id"`
	ToStage     string     `json:"to_stage"`
	ChangedBy   string     `json:"changed_by"`
	Note        string     `json:"note"`
}

// TimelineSnapshotResponse is the full timeline read model for a booking
type TimelineSnapshotResponse struct {
	BookingID          uuid.UUID                 `json:"booking_id"`
	BookingCode        string                    `json:"booking_code"`
	IsShifted          bool                      `json:"is_shifted"`
	Stages             []TimelineStageResponse   `json:"stages"`
	CurrentStage       *TimelineStageResponse    `json:"current_stage"`
	History            []TimelineHistoryResponse `json:"history"`
	RegistrationExists bool                      `json:"registration_exists"`
}

// GetTimeline builds the timeline snapshot for a booking: the ordered
// stage set with classifications, the current stage and the full history
// newest first.
func (s *RegistrationService) GetTimeline(bookingID uuid.UUID) (*TimelineSnapshotResponse, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	stages, err := s.stageRepo.GetByProjectID(booking.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project stages: %w", err)
	}

	history, err := s.historyRepo.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage history: %w", err)
	}

	return s.toSnapshot(booking, stages, history), nil
}

// AdvanceStage moves a booking's registration into the target stage after
// all guards pass, appending an audit entry. The caller supplies the
// resolved view mode and actor identity.
func (s *RegistrationService) AdvanceStage(bookingID uuid.UUID, req *AdvanceStageRequest, actor string, mode viewmode.Mode) (*TimelineSnapshotResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if mode.ReadOnly() {
		return nil, apperrors.ErrReadOnlyMode
	}

	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	stages, err := s.stageRepo.GetByProjectID(booking.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project stages: %w", err)
	}
	if len(stages) == 0 {
		return nil, apperrors.ErrNoStagesConfigured
	}

	graphStages := toGraphStages(stages)
	target, ok := findGraphStage(graphStages, req.StageID)
	if !ok {
		return nil, apperrors.ErrStageNotFound
	}

	history, err := s.historyRepo.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage history: %w", err)
	}
	current := currentGraphStage(graphStages, history)

	if !stagegraph.TransitionAllowed(graphStages, current, target) {
		return nil, apperrors.ErrStageTransitionNotAllowed
	}

	entry := &models.StageHistory{
		BookingID: bookingID,
		ToStageID: target.ID,
		ChangedBy: actor,
		Note:      req.Note,
		ChangedAt: time.Now(),
	}
	if current != nil {
		fromID := current.ID
		entry.FromStageID = &fromID
	}

	if err := s.historyRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to record stage transition: %w", err)
	}

	return s.GetTimeline(bookingID)
}

// ShiftBooking sets the one-shot shifted flag on a booking. Shifting an
// already shifted booking is rejected; the flag is never cleared through
// the API.
func (s *RegistrationService) ShiftBooking(bookingID uuid.UUID, req *ShiftBookingRequest, actor string, mode viewmode.Mode) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if mode.ReadOnly() {
		return apperrors.ErrReadOnlyMode
	}

	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.IsShifted {
		return apperrors.ErrBookingAlreadyShifted
	}

	if err := s.bookingRepo.MarkShifted(bookingID, req.Note, actor); err != nil {
		return fmt.Errorf("failed to mark booking as shifted: %w", err)
	}

	return nil
}

// toSnapshot assembles the timeline read model from loaded rows.
func (s *RegistrationService) toSnapshot(booking *models.Booking, stages []models.Stage, history []models.StageHistory) *TimelineSnapshotResponse {
	graphStages := toGraphStages(stages)
	current := currentGraphStage(graphStages, history)
	transitions := toTransitions(history)

	stageResponses := make([]TimelineStageResponse, len(stages))
	for i, stage := range stages {
		graphStage := graphStages[i]
		stageResponses[i] = TimelineStageResponse{
			ID:             stage.ID,
			Name:           stage.Name,
			Order:          stage.SortOrder,
			Classification: stagegraph.Classify(current, transitions, graphStage),
			Allowed:        stagegraph.TransitionAllowed(graphStages, current, graphStage),
		}
	}

	snapshot := &TimelineSnapshotResponse{
		BookingID:          booking.ID,
		BookingCode:        booking.BookingCode,
		IsShifted:          booking.IsShifted,
		Stages:             stageResponses,
		History:            make([]TimelineHistoryResponse, len(history)),
		RegistrationExists: len(history) > 0,
	}

	if current != nil {
		for i := range stageResponses {
			if stageResponses[i].ID == current.ID {
				currentCopy := stageResponses[i]
				snapshot.CurrentStage = &currentCopy
				break
			}
		}
	}

	for i, entry := range history {
		row := TimelineHistoryResponse{
			At:        entry.ChangedAt.Format("2006-01-02T15:04:05Z07:00"),
			ToStageID: entry.ToStageID,
			ToStage:   entry.ToStage.Name,
			ChangedBy: entry.ChangedBy,
			Note:      entry.Note,
		}
		if entry.FromStageID != nil {
			fromID := *entry.FromStageID
			row.FromStageID = &fromID
		}
		if entry.FromStage != nil {
			name := entry.FromStage.Name
			row.FromStage = &name
		}
		snapshot.History[i] = row
	}

	return snapshot
}

// toGraphStages converts stage rows into stage graph inputs, preserving
// the repository's sort order.
func toGraphStages(stages []models.Stage) []stagegraph.Stage {
	graphStages := make([]stagegraph.Stage, len(stages))
	for i, stage := range stages {
		graphStages[i] = stagegraph.Stage{ID: stage.ID, Name: stage.Name, Order: stage.SortOrder}
	}
	return graphStages
}

// toTransitions projects history rows into stage graph transitions.
func toTransitions(history []models.StageHistory) []stagegraph.Transition {
	transitions := make([]stagegraph.Transition, len(history))
	for i, entry := range history {
		transitions[i] = stagegraph.Transition{FromStageID: entry.FromStageID, ToStageID: entry.ToStageID}
	}
	return transitions
}

// currentGraphStage resolves the current stage from the newest history
// entry, or nil when registration has not started.
func currentGraphStage(graphStages []stagegraph.Stage, history []models.StageHistory) *stagegraph.Stage {
	if len(history) == 0 {
		return nil
	}
	// History is ordered newest first.
	latest := history[0]
	if stage, ok := findGraphStage(graphStages, latest.ToStageID); ok {
		return &stage
	}
	return nil
}

func findGraphStage(graphStages []stagegraph.Stage, id uuid.UUID) (stagegraph.Stage, bool) {
	for _, stage := range graphStages {
		if stage.ID == id {
			return stage, true
		}
	}
	return stagegraph.Stage{}, false
}
