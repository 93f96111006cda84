package services

import "errors"

// Failure variants for the completion path. Handlers map each to exactly
// one HTTP status; nothing else about a failure crosses the boundary.
var (
	// ErrTimeout means the completion service did not answer within the
	// configured window.
	ErrTimeout = errors.New("completion timed out")

	// ErrServiceUnavailable means the completion service could not be
	// reached or returned a non-200 status.
	ErrServiceUnavailable = errors.New("completion service unavailable")

	// ErrInvalidCompletion means the completion arrived but was unusable:
	// no content, empty text, or a verbatim echo of the question.
	ErrInvalidCompletion = errors.New("invalid completion")
)

// ValidationError rejects empty or out-of-bounds input before it reaches
// the responder.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}
