package domain

import (
	"errors"
	"strings"
)

var ErrForbidden = errors.New("access forbidden")
var ErrProjectNotFound = errors.New("project not found")
var ErrProjectHasTasks = errors.New("project still has tasks")
var ErrTaskNotFound = errors.New("task not found")
var ErrWorkflowNotFound = errors.New("workflow not found")
var ErrStepNotFound = errors.New("step not found")

// ValidationError carries field-level violations collected before an entity
// is constructed or mutated. It is a value to inspect, not control flow.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Violations, "; ")
}

// NewValidationError builds a ValidationError from one or more violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}
