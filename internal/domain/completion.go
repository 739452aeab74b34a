package domain

import "context"

// Completer is the text generation contract between layers.
// A single attempt is made per call; retries belong to the caller.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// HealthChecker verifies backend availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
