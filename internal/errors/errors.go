package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in project"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProjectNotFound        = &NotFoundError{Entity: "project"}
	ErrStageNotFound          = &NotFoundError{Entity: "stage"}
	ErrBookingNotFound        = &NotFoundError{Entity: "booking"}
	ErrLeadNotFound           = &NotFoundError{Entity: "lead"}
	ErrDemandNoteNotFound     = &NotFoundError{Entity: "demand note"}
	ErrPaymentReceiptNotFound = &NotFoundError{Entity: "payment receipt"}
	ErrNoticeNotFound         = &NotFoundError{Entity: "notice"}
	ErrEventNotFound          = &NotFoundError{Entity: "event"}
)

// Already Exists Errors
var (
	ErrProjectExists        = &AlreadyExistsError{Entity: "project", Context: "with this name or code"}
	ErrStageOrderExists     = &AlreadyExistsError{Entity: "stage", Context: "with this order in the project"}
	ErrBookingExists        = &AlreadyExistsError{Entity: "booking", Context: "with this booking code"}
	ErrDemandNoteExists     = &AlreadyExistsError{Entity: "demand note", Context: "with this note number"}
	ErrPaymentReceiptExists = &AlreadyExistsError{Entity: "payment receipt", Context: "with this receipt number"}
)

// Registration Workflow Errors
var (
	ErrStageTransitionNotAllowed = errors.New("stage transition is not allowed from the current stage")
	ErrReadOnlyMode              = errors.New("timeline is read-only in this view")
	ErrBookingAlreadyShifted     = errors.New("booking is already marked as shifted")
	ErrNoStagesConfigured        = errors.New("project has no registration stages configured")
	ErrStageInUse                = errors.New("stage is referenced by registration history")
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrDueDateInPast           = errors.New("due date is in the past")
	ErrDemandNoteNotIssued     = errors.New("demand note is not in issued state")
	ErrNoticeAlreadyPublished  = errors.New("notice is already published")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidToken     = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingActor     = &AuthenticationError{Message: "actor not found in context"}
	ErrInsufficientRole = &AuthorizationError{Message: "role does not permit this operation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
