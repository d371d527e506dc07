package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrValidation = errors.New("validation error")

// ErrUnsupportedType is returned when a validator receives input of a type
// it does not know how to check.
var ErrUnsupportedType = errors.New("unsupported input type")

// ValidationError carries per-field validation messages. It wraps
// ErrValidation so callers can match it with errors.Is.
type ValidationError struct {
	// Fields maps a field name to the list of messages for that field.
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready to collect
// field messages.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for the named field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no messages were collected.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}

	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, ", "))
}

// Unwrap lets errors.Is match ValidationError against ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
