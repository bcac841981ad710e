package normalize

import "fmt"

// ValidationError reports the piece of the invocation body that was missing
// or malformed. Validation runs before any output is built, so a failed call
// produces no partial result.
type ValidationError struct {
	// Field is the JSON path of the offending input, e.g. "conversation.output".
	Field string
	// Reason says what was wrong with it.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid normalizer input: %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
