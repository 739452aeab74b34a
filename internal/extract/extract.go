// Package extract turns generated text into typed results.
//
// Run asks a completer for text, parses it, and maps it onto a result with
// a caller-supplied total decoder. Any failure along the way is replaced by
// the caller's fallback, so Run always returns a usable value.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/navigator/internal/domain"
)

// Outcome classifies how a result was produced.
type Outcome string

const (
	// OutcomeSuccess means the result was decoded from generated output.
	OutcomeSuccess Outcome = "success"
	// OutcomeGenerationFailed means the backend call failed.
	OutcomeGenerationFailed Outcome = "generation_failed"
	// OutcomeMalformed means the output could not be parsed.
	OutcomeMalformed Outcome = "malformed_output"
)

// Report describes a single extraction.
type Report struct {
	Outcome Outcome
	Err     error
}

// Degraded reports whether the fallback was used.
func (r Report) Degraded() bool { return r.Outcome != OutcomeSuccess }

// Run completes prompt and decodes the reply. decode must be total over any
// Value; fallback receives the failure and must return a complete result.
func Run[T any](
	ctx context.Context,
	c domain.Completer,
	prompt string,
	decode func(Value) T,
	fallback func(error) T,
) (T, Report) {
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		if !errors.Is(err, domain.ErrGenerationFailure) {
			err = fmt.Errorf("%w: %w", domain.ErrGenerationFailure, err)
		}
		return fallback(err), Report{Outcome: OutcomeGenerationFailed, Err: err}
	}

	v, err := Parse(text)
	if err != nil {
		return fallback(err), Report{Outcome: OutcomeMalformed, Err: err}
	}
	return decode(v), Report{Outcome: OutcomeSuccess}
}
