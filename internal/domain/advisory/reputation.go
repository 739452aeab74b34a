package advisory

import "strings"

// ReputationRequest describes what to scan for sentiment.
type ReputationRequest struct {
	StartupName          string `json:"startup_name"`
	FounderLinkedInURL   string `json:"founder_linkedin_url,omitempty"`
	FounderTwitterHandle string `json:"founder_twitter_handle,omitempty"`
	InitialPitchText     string `json:"initial_pitch_text"`
}

// MinReputationPitchLength is the shortest accepted pitch text.
const MinReputationPitchLength = 50

// Normalize returns a copy with surrounding whitespace and a leading @ removed.
func (r ReputationRequest) Normalize() ReputationRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.FounderLinkedInURL = strings.TrimSpace(r.FounderLinkedInURL)
	r.FounderTwitterHandle = strings.TrimPrefix(strings.TrimSpace(r.FounderTwitterHandle), "@")
	r.InitialPitchText = strings.TrimSpace(r.InitialPitchText)
	return r
}

// Validate checks required fields.
func (r ReputationRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if len(r.InitialPitchText) < MinReputationPitchLength {
		return invalid("initial_pitch_text must be at least %d characters", MinReputationPitchLength)
	}
	return nil
}

// ReputationResult is the outcome of a reputation scan.
type ReputationResult struct {
	StartupName           string   `json:"startup_name"`
	OverallSentimentScore float64  `json:"overall_sentiment_score"`
	PositiveThemes        []string `json:"positive_themes"`
	NegativeThemes        []string `json:"negative_themes"`
	NeutralThemes         []string `json:"neutral_themes"`
	ActionableInsights    []string `json:"actionable_insights"`
	Degraded              bool     `json:"degraded"`
}
