// Package advisory holds the request and result types of the advisory features.
//
// Requests are plain values: they are fingerprinted as JSON, so every field
// that changes the answer must be serialised. Results are always fully
// populated; list fields are never nil after decoding or fallback.
package advisory

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain"
)

// Feature names double as cache namespaces.
const (
	FeatureRisk       = "risk_analysis"
	FeatureReputation = "reputation_scan"
	FeatureInvestor   = "investor_match"
	FeaturePitch      = "pitch_feedback"
	FeatureCompetitor = "competitor_radar"
	FeatureTraction   = "traction_estimate"
	FeatureBuzz       = "buzz_builder"
	FeatureLegal      = "legal_assistance"
	FeatureExit       = "exit_strategy"
	FeatureTalent     = "talent_navigator"
)

// Features lists every feature name.
var Features = []string{
	FeatureRisk, FeatureReputation, FeatureInvestor, FeaturePitch, FeatureCompetitor,
	FeatureTraction, FeatureBuzz, FeatureLegal, FeatureExit, FeatureTalent,
}

// Risk levels.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// ServiceErrorName marks a degraded entry produced after a backend failure.
const ServiceErrorName = "AI Service Error"

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrInvalidRequest)
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", name)
	}
	return nil
}

func trimAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeLevel maps free text to low, medium or high. Unknown input is medium.
func NormalizeLevel(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelLow:
		return LevelLow
	case LevelHigh:
		return LevelHigh
	default:
		return LevelMedium
	}
}
