package genquiz

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout is returned when the LLM call exceeds its deadline.
	ErrTimeout = errors.New("ai service request timed out")
	// ErrUnparseableResponse is returned when no recovery strategy could
	// extract a question list from the model output.
	ErrUnparseableResponse = errors.New("ai response is empty or unparseable")
	// ErrNoValidQuestions is returned when every candidate was filtered out
	// during validation.
	ErrNoValidQuestions = errors.New("no valid questions found in ai response")
)

// RateLimitError indicates the provider returned 429. ResetAt is set when
// the provider supplied a reset timestamp.
type RateLimitError struct {
	ResetAt *time.Time
	Err     error
}

func (e *RateLimitError) Error() string {
	if e.ResetAt != nil {
		return fmt.Sprintf("rate limited until %s: %v", e.ResetAt.Format(time.RFC3339), e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// Detail renders the human-readable message reported to callers.
func (e *RateLimitError) Detail() string {
	if e.ResetAt != nil {
		return fmt.Sprintf(
			"Daily rate limit exceeded for free tier. Resets on %s. Consider upgrading to paid tier for more requests.",
			e.ResetAt.Format("January 02, 2006 at 03:04 PM"),
		)
	}
	return "Rate limit exceeded. Please wait before generating another quiz."
}

// UpstreamError indicates a non-200, non-429 failure from the provider.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ai service error (%d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ai service error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
