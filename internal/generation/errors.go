package generation

import (
	"fmt"
	"strings"
)

// User-facing banner texts for the two failure kinds.
const (
	WarningMessage = "Please complete all required fields."
	FailureMessage = "AI generation failed. Please retry."
)

// ValidationError means required input was missing or the role was not recognized.
// No request was sent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error: invalid candidate profile"
	}
	return fmt.Sprintf("validation error: %s", strings.Join(e.Fields, ", "))
}

// GenerationError covers every failure of the completion call. The cause is kept for
// logs only: Error is constant and the error does not unwrap, so callers cannot
// tell a network failure from a malformed response.
type GenerationError struct {
	cause error
}

func (e *GenerationError) Error() string {
	return "resume generation failed"
}
