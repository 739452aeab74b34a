package advisory

import "strings"

// RiskRequest describes a startup for risk analysis.
type RiskRequest struct {
	StartupName             string `json:"startup_name"`
	Industry                string `json:"industry"`
	MarketSizeUSD           int64  `json:"market_size_usd"`
	FounderExperienceYears  int    `json:"founder_experience_years"`
	InitialFundingNeededUSD int64  `json:"initial_funding_needed_usd"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r RiskRequest) Normalize() RiskRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.Industry = strings.TrimSpace(r.Industry)
	return r
}

// Validate checks required fields and ranges.
func (r RiskRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("industry", r.Industry); err != nil {
		return err
	}
	if r.MarketSizeUSD <= 0 {
		return invalid("market_size_usd must be positive")
	}
	if r.FounderExperienceYears < 0 {
		return invalid("founder_experience_years must not be negative")
	}
	if r.InitialFundingNeededUSD <= 0 {
		return invalid("initial_funding_needed_usd must be positive")
	}
	return nil
}

// RiskFactor is one assessed risk dimension.
type RiskFactor struct {
	Name                 string `json:"name"`
	Level                string `json:"level"`
	MitigationSuggestion string `json:"mitigation_suggestion"`
}

// RiskResult is the outcome of a risk analysis.
type RiskResult struct {
	StartupName      string       `json:"startup_name"`
	OverallRiskScore float64      `json:"overall_risk_score"`
	RiskFactors      []RiskFactor `json:"risk_factors"`
	Recommendations  []string     `json:"recommendations"`
	Degraded         bool         `json:"degraded"`
}

// DefaultRiskScore is the neutral midpoint used when no score is available.
const DefaultRiskScore = 50.0
