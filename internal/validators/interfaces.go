package validators

import "context"

// Validator checks domain input for correctness before it reaches storage.
// When fields are passed, only the named fields are checked; otherwise the
// whole input is validated.
type Validator interface {
	Validate(ctx context.Context, data any, fields ...string) error
}
