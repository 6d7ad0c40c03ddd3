// Package errors holds the application errors that services return and the
// HTTP layer translates into status codes.
package errors

import (
	"errors"
	"strings"
)

// NotFoundError reports a missing member, task, subtask or rating. Two values
// match under errors.Is when they name the same entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Entity == e.Entity
}

// ValidationError is returned for input rejected before anything is written
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation error: ")
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(" - ")
	}
	b.WriteString(e.Message)
	return b.String()
}

var (
	ErrMemberNotFound  = &NotFoundError{Entity: "member"}
	ErrTaskNotFound    = &NotFoundError{Entity: "task"}
	ErrSubtaskNotFound = &NotFoundError{Entity: "subtask"}
	ErrRatingNotFound  = &NotFoundError{Entity: "rating"}

	// ErrAssignedMemberGone is returned when a task write names a member id
	// that is not in the roster.
	ErrAssignedMemberGone = &NotFoundError{Entity: "assigned member"}
)

var (
	ErrInvalidStatus     = &ValidationError{Field: "status", Message: "must be one of not-started, in-progress, review, completed"}
	ErrInvalidRatingMode = &ValidationError{Field: "mode", Message: "must be one of daily, final"}
	ErrInvalidTimeRange  = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}
	ErrInvalidAttachment = &ValidationError{Field: "base64_data", Message: "attachment data must be valid base64"}
)

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// NewValidationError rejects field with message. An empty field describes the
// request as a whole.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
