package advisory

import "strings"

// InvestorProfile is a roster entry.
type InvestorProfile struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	RiskTolerance       string   `json:"risk_tolerance"`
	PreferredIndustries []string `json:"preferred_industries"`
	MinInvestmentUSD    int64    `json:"min_investment_usd"`
	MaxInvestmentUSD    int64    `json:"max_investment_usd"`
	FeedbackFocus       []string `json:"feedback_focus"`
}

// InvestorMatchRequest carries the startup profile plus upstream analyses.
type InvestorMatchRequest struct {
	StartupName       string           `json:"startup_name"`
	Industry          string           `json:"industry"`
	FundingSoughtUSD  int64            `json:"funding_sought_usd"`
	RiskProfile       RiskResult       `json:"risk_profile"`
	ReputationProfile ReputationResult `json:"reputation_profile"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r InvestorMatchRequest) Normalize() InvestorMatchRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.Industry = strings.TrimSpace(r.Industry)
	return r
}

// Validate checks required fields.
func (r InvestorMatchRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("industry", r.Industry); err != nil {
		return err
	}
	if r.FundingSoughtUSD <= 0 {
		return invalid("funding_sought_usd must be positive")
	}
	return nil
}

// MatchDetail explains one investor match.
type MatchDetail struct {
	Investor     InvestorProfile `json:"investor"`
	MatchScore   float64         `json:"match_score"`
	MatchReasons []string        `json:"match_reasons"`
	Gaps         []string        `json:"gaps"`
}

// InvestorMatchResult ranks matching investors, best first.
type InvestorMatchResult struct {
	StartupName      string        `json:"startup_name"`
	MatchedInvestors []MatchDetail `json:"matched_investors"`
	Summary          string        `json:"summary"`
	OutreachAdvice   []string      `json:"outreach_advice"`
	Degraded         bool          `json:"degraded"`
}
