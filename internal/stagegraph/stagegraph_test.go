package stagegraph_test

import (
	"testing"

	"realty-crm-backend/internal/stagegraph"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeStage(name string, order int) stagegraph.Stage {
	return stagegraph.Stage{ID: uuid.New(), Name: name, Order: order}
}

func TestTransitionAllowed_NoRegistrationStarted(t *testing.T) {
	a := makeStage("Token", 1)
	b := makeStage("Allotment", 1) // tied minimum
	c := makeStage("Agreement", 2)
	stages := []stagegraph.Stage{a, b, c}

	assert.True(t, stagegraph.TransitionAllowed(stages, nil, a), "first stage at minimum order should be a legal entry point")
	assert.True(t, stagegraph.TransitionAllowed(stages, nil, b), "tied minimum order should also be a legal entry point")
	assert.False(t, stagegraph.TransitionAllowed(stages, nil, c), "stage above the minimum order is not a legal entry point")
}

func TestTransitionAllowed_EmptyStageSet(t *testing.T) {
	target := makeStage("Anything", 1)

	assert.False(t, stagegraph.TransitionAllowed(nil, nil, target))
	assert.False(t, stagegraph.TransitionAllowed([]stagegraph.Stage{}, nil, target))
}

func TestTransitionAllowed_ForwardOnly(t *testing.T) {
	booking := makeStage("Booking", 1)
	kyc := makeStage("KYC", 2)
	sameOrder := makeStage("Parallel KYC", 2)
	agreement := makeStage("Agreement", 3)
	registered := makeStage("Registered", 5)
	stages := []stagegraph.Stage{booking, kyc, sameOrder, agreement, registered}

	testCases := []struct {
		name    string
		target  stagegraph.Stage
		allowed bool
	}{
		{"backward move rejected", booking, false},
		{"same order on different stage rejected", sameOrder, false},
		{"immediate next allowed", agreement, true},
		{"skip-ahead over intermediate stages allowed", registered, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, stagegraph.TransitionAllowed(stages, &kyc, tc.target))
		})
	}
}

func TestTransitionAllowed_SameStageAlwaysRejected(t *testing.T) {
	current := makeStage("KYC", 2)
	stages := []stagegraph.Stage{makeStage("Booking", 1), current}

	assert.False(t, stagegraph.TransitionAllowed(stages, &current, current))

	// Even with an inconsistent higher order on the same id the move is
	// rejected: identity wins over ordering.
	mutated := current
	mutated.Order = 9
	assert.False(t, stagegraph.TransitionAllowed(stages, &current, mutated))
}

func TestAllowedTargets(t *testing.T) {
	booking := makeStage("Booking", 1)
	kyc := makeStage("KYC", 2)
	registered := makeStage("Registered", 3)
	stages := []stagegraph.Stage{booking, kyc, registered}

	assert.Equal(t, []stagegraph.Stage{booking}, stagegraph.AllowedTargets(stages, nil))
	assert.Equal(t, []stagegraph.Stage{kyc, registered}, stagegraph.AllowedTargets(stages, &booking))
	assert.Empty(t, stagegraph.AllowedTargets(stages, &registered))
}

func TestClassify(t *testing.T) {
	booking := makeStage("Booking", 1)
	kyc := makeStage("KYC", 2)
	registered := makeStage("Registered", 3)

	history := []stagegraph.Transition{
		{ToStageID: booking.ID},
		{FromStageID: &booking.ID, ToStageID: kyc.ID},
	}

	assert.Equal(t, stagegraph.ClassificationCurrent, stagegraph.Classify(&kyc, history, kyc))
	assert.Equal(t, stagegraph.ClassificationVisited, stagegraph.Classify(&kyc, history, booking))
	assert.Equal(t, stagegraph.ClassificationPending, stagegraph.Classify(&kyc, history, registered))
}

func TestClassify_SkippedStagesStayPending(t *testing.T) {
	booking := makeStage("Booking", 1)
	kyc := makeStage("KYC", 2)
	registered := makeStage("Registered", 3)

	// Jumped straight from Booking to Registered; KYC was never entered.
	history := []stagegraph.Transition{
		{ToStageID: booking.ID},
		{FromStageID: &booking.ID, ToStageID: registered.ID},
	}

	assert.Equal(t, stagegraph.ClassificationPending, stagegraph.Classify(&registered, history, kyc))
}

func TestClassify_Pure(t *testing.T) {
	booking := makeStage("Booking", 1)
	kyc := makeStage("KYC", 2)
	history := []stagegraph.Transition{{ToStageID: booking.ID}}

	first := stagegraph.Classify(&kyc, history, booking)
	second := stagegraph.Classify(&kyc, history, booking)
	assert.Equal(t, first, second)
}
