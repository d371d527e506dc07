package validators

import (
	"context"
	"fmt"
	"strings"

	"newsroom/models"
)

// Field names reported by the news validator.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// NewsValidator validates news input payloads.
type NewsValidator struct{}

func NewNewsValidator() *NewsValidator {
	return &NewsValidator{}
}

// Validate checks a models.NewsInput. Both title and description must be
// non-blank. Whitespace-only values are treated as blank.
func (v *NewsValidator) Validate(_ context.Context, data any, fields ...string) error {
	input, ok := data.(models.NewsInput)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	verr := NewValidationError()
	for _, field := range fieldsOrAll(fields, FieldTitle, FieldDescription) {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(input.Title) == "" {
				verr.Add(FieldTitle, "This value should not be blank.")
			}
		case FieldDescription:
			if strings.TrimSpace(input.Description) == "" {
				verr.Add(FieldDescription, "This value should not be blank.")
			}
		}
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

// fieldsOrAll returns the requested fields, or all known fields when none
// were requested.
func fieldsOrAll(requested []string, all ...string) []string {
	if len(requested) == 0 {
		return all
	}

	return requested
}
