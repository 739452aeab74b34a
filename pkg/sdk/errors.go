package navigator

import "github.com/kailas-cloud/navigator/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidRequest    = domain.ErrInvalidRequest
	ErrGenerationFailure = domain.ErrGenerationFailure
	ErrSearchFailure     = domain.ErrSearchFailure
)
