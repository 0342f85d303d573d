package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "realty-crm-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "booking not found", apperrors.ErrBookingNotFound.Error())
	assert.True(t, errors.Is(apperrors.ErrBookingNotFound, &apperrors.NotFoundError{Entity: "booking"}))
	assert.False(t, errors.Is(apperrors.ErrBookingNotFound, apperrors.ErrProjectNotFound))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "booking already exists with this booking code", apperrors.ErrBookingExists.Error())

	bare := apperrors.NewAlreadyExistsError("stage", "")
	assert.Equal(t, "stage already exists", bare.Error())
}

func TestValidationError(t *testing.T) {
	withField := apperrors.NewValidationError("amount", "must be positive")
	assert.Equal(t, "validation error: amount - must be positive", withField.Error())

	withoutField := apperrors.NewValidationError("", "payload malformed")
	assert.Equal(t, "validation error: payload malformed", withoutField.Error())
}

func TestHelpers(t *testing.T) {
	wrapped := fmt.Errorf("load booking: %w", apperrors.ErrBookingNotFound)

	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.False(t, apperrors.IsNotFound(apperrors.ErrStageTransitionNotAllowed))

	assert.True(t, apperrors.IsAlreadyExists(apperrors.ErrStageOrderExists))
	assert.True(t, apperrors.IsValidation(apperrors.NewValidationError("f", "m")))
	assert.True(t, apperrors.IsAuthentication(apperrors.ErrInvalidToken))
	assert.True(t, apperrors.IsAuthorization(apperrors.ErrInsufficientRole))
	assert.False(t, apperrors.IsAuthorization(apperrors.ErrInvalidToken))
}

func TestWorkflowSentinels(t *testing.T) {
	assert.EqualError(t, apperrors.ErrStageTransitionNotAllowed, "stage transition is not allowed from the current stage")
	assert.EqualError(t, apperrors.ErrReadOnlyMode, "timeline is read-only in this view")
	assert.EqualError(t, apperrors.ErrBookingAlreadyShifted, "booking is already marked as shifted")
}
