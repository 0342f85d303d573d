// Package stagegraph implements the transition rules for the registration
// stage workflow. Stages form a strict forward-only progression: a booking
// with no registration may only enter a stage at the minimum order, and a
// booking with a current stage may only move to a stage with a strictly
// greater order. Skipping ahead over intermediate stages is allowed;
// moving backward is not.
package stagegraph

import "github.com/google/uuid"

// Stage is one ordered step of a registration workflow.
type Stage struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Order int       `json:"order"`
}

// Transition is the minimal view of one history entry needed for
// classification: which stage it moved into, and from where.
type Transition struct {
	FromStageID *uuid.UUID `json:"from_stage_id,omitempty"`
	ToStageID   uuid.UUID  `json:"to_stage_id"`
}

// Classification describes how a stage should be presented relative to the
// current progression state.
type Classification string

const (
	// ClassificationCurrent marks the stage the booking is currently in.
	ClassificationCurrent Classification = "current"
	// ClassificationVisited marks a stage that appears as the target of
	// any recorded transition and is not the current stage.
	ClassificationVisited Classification = "visited"
	// ClassificationPending marks a stage that has not been reached.
	// Stages skipped over by a forward jump stay pending; history records
	// only transitions that actually happened.
	ClassificationPending Classification = "pending"
)

// TransitionAllowed reports whether moving the booking into target is legal.
//
// With no current stage (registration not started) only stages at the
// minimum order across the stage set are legal entry points; ties at the
// minimum are all allowed and remain independently reachable. With a
// current stage, the target must be a different stage with a strictly
// greater order. An empty stage set allows nothing.
func TransitionAllowed(stages []Stage, current *Stage, target Stage) bool {
	if len(stages) == 0 {
		return false
	}

	if current == nil {
		return target.Order == minOrder(stages)
	}

	if target.ID == current.ID {
		return false
	}
	return target.Order > current.Order
}

// AllowedTargets returns the stages that TransitionAllowed would accept,
// in the order they appear in stages.
func AllowedTargets(stages []Stage, current *Stage) []Stage {
	var targets []Stage
	for _, s := range stages {
		if TransitionAllowed(stages, current, s) {
			targets = append(targets, s)
		}
	}
	return targets
}

// Classify determines how stage s should be presented given the current
// stage and the recorded transition history. It is a pure function of its
// inputs.
func Classify(current *Stage, history []Transition, s Stage) Classification {
	if current != nil && s.ID == current.ID {
		return ClassificationCurrent
	}
	for _, t := range history {
		if t.ToStageID == s.ID {
			return ClassificationVisited
		}
	}
	return ClassificationPending
}

func minOrder(stages []Stage) int {
	min := stages[0].Order
	for _, s := range stages[1:] {
		if s.Order < min {
			min = s.Order
		}
	}
	return min
}
