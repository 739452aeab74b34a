package advisory

import "strings"

// MinPitchLength is the shortest pitch accepted for feedback.
const MinPitchLength = 100

// PitchFeedbackRequest carries a pitch and optional upstream analyses.
type PitchFeedbackRequest struct {
	StartupName          string               `json:"startup_name"`
	PitchText            string               `json:"pitch_text"`
	RiskProfile          *RiskResult          `json:"risk_profile,omitempty"`
	ReputationProfile    *ReputationResult    `json:"reputation_profile,omitempty"`
	InvestorMatchResults *InvestorMatchResult `json:"investor_match_results,omitempty"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r PitchFeedbackRequest) Normalize() PitchFeedbackRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.PitchText = strings.TrimSpace(r.PitchText)
	return r
}

// Validate checks required fields.
func (r PitchFeedbackRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if len(r.PitchText) < MinPitchLength {
		return invalid("pitch_text must be at least %d characters", MinPitchLength)
	}
	return nil
}

// PitchFeedbackResult holds feedback points and suggestions.
type PitchFeedbackResult struct {
	StartupName               string   `json:"startup_name"`
	Feedback                  []string `json:"feedback"`
	SuggestionsForImprovement []string `json:"suggestions_for_improvement"`
	Degraded                  bool     `json:"degraded"`
}
