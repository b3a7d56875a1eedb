// Package domainerr defines the error taxonomy shared by the credit
// application workflow. Every guard violation maps to exactly one sentinel so
// callers can tell "you lack permission" from "already processed" from
// "risk must be evaluated first".
package domainerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrApplicationNotFound indicates the referenced credit application does not exist.
	ErrApplicationNotFound = errors.New("credit application not found")

	// ErrMemberNotFound indicates the referenced member does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrForbidden indicates the actor's roles do not grant the attempted operation.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyEvaluated indicates the application already carries a risk
	// evaluation; evaluations are attached at most once.
	ErrAlreadyEvaluated = errors.New("application already has a risk evaluation")

	// ErrAlreadyFinalized indicates the application has reached a terminal
	// status; terminal applications never re-open.
	ErrAlreadyFinalized = errors.New("application has already been finalized")

	// ErrEvaluationRequired indicates a decision was attempted before the
	// automated risk evaluation ran.
	ErrEvaluationRequired = errors.New("risk evaluation required before a decision")

	// ErrConflict indicates the operation lost a concurrent-modification race
	// and may be retried.
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrDuplicateDocument indicates a member registration reused an existing
	// document number.
	ErrDuplicateDocument = errors.New("document number already registered")
)

// FieldViolation describes a single invalid input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError reports malformed or out-of-bounds input. It carries
// field-level messages so transports can render them individually.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
