package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrProvider              = errors.New("league data provider error")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// ErrTeamNotFound reports that no team in the league matched the requested name.
var ErrTeamNotFound = fmt.Errorf("%w: team not found", ErrNotFound)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries field level detail for a rejected request. It matches
// ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
