package advisory

import "strings"

// Hiring surge indications.
const (
	HiringHigh         = "High"
	HiringMedium       = "Medium"
	HiringLow          = "Low"
	HiringNoIndication = "No indication"
)

// CompetitorRadarRequest describes the startup whose competitors are tracked.
type CompetitorRadarRequest struct {
	StartupName                   string `json:"startup_name"`
	YourIndustry                  string `json:"your_industry"`
	YourProductServiceDescription string `json:"your_product_service_description"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r CompetitorRadarRequest) Normalize() CompetitorRadarRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.YourIndustry = strings.TrimSpace(r.YourIndustry)
	r.YourProductServiceDescription = strings.TrimSpace(r.YourProductServiceDescription)
	return r
}

// Validate checks required fields.
func (r CompetitorRadarRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("your_industry", r.YourIndustry); err != nil {
		return err
	}
	return required("your_product_service_description", r.YourProductServiceDescription)
}

// CompetitorInfo summarises one tracked competitor.
type CompetitorInfo struct {
	Name                  string   `json:"name"`
	Website               string   `json:"website,omitempty"`
	ProductDescription    string   `json:"product_description"`
	ValueProposition      string   `json:"value_proposition"`
	TargetMarket          string   `json:"target_market"`
	FundingRounds         []string `json:"funding_rounds"`
	PressMentionsSummary  []string `json:"press_mentions_summary"`
	HiringSurgeIndication string   `json:"hiring_surge_indication"`
	OverallSummary        string   `json:"overall_summary"`
}

// CompetitorRadarResult lists tracked competitors and market trends.
type CompetitorRadarResult struct {
	StartupName         string           `json:"startup_name"`
	TrackedCompetitors  []CompetitorInfo `json:"tracked_competitors"`
	GeneralMarketTrends []string         `json:"general_market_trends"`
	Degraded            bool             `json:"degraded"`
}

// NormalizeHiring maps free text onto the known hiring indications.
func NormalizeHiring(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return HiringHigh
	case "medium":
		return HiringMedium
	case "low":
		return HiringLow
	default:
		return HiringNoIndication
	}
}
