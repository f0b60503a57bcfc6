// Package llm wraps the text generation backend used by both canvas gates.
package llm

import (
	"context"
	"errors"
)

// ErrGeneration wraps any failure to obtain text from the backend after
// retries are exhausted.
var ErrGeneration = errors.New("text generation failed")

// TextGenerator produces free-form text for a prompt. Implementations must be
// safe for concurrent use.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
