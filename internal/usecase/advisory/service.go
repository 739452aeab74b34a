// Package advisory implements the startup-advisory features.
//
// Every operation returns a complete result and never an error: generation
// and parse failures produce the feature's fallback, marked degraded.
package advisory

import (
	"math"

	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/repository/reference"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// Service runs advisory features through the cached runner.
type Service struct {
	runner *runner.Runner
	search lookup
	ref    *reference.Data
	logger *zap.Logger
}

// New creates the advisory service.
func New(r *runner.Runner, search lookup, ref *reference.Data, logger *zap.Logger) *Service {
	return &Service{
		runner: r,
		search: search,
		ref:    ref,
		logger: logger,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
