package advisory

import "strings"

// ExitRequest describes the startup planning an exit.
type ExitRequest struct {
	StartupName                 string   `json:"startup_name"`
	Industry                    string   `json:"industry"`
	BusinessModelSummary        string   `json:"business_model_summary"`
	FundingStage                string   `json:"funding_stage"`
	CurrentRevenueUSD           *float64 `json:"current_revenue_usd,omitempty"`
	MonthlyActiveUsers          *int64   `json:"monthly_active_users,omitempty"`
	CompetitiveLandscapeSummary string   `json:"competitive_landscape_summary,omitempty"`
	IPStatus                    string   `json:"ip_status,omitempty"`
	UniqueValueProposition      string   `json:"unique_value_proposition,omitempty"`
	FounderExitGoals            string   `json:"founder_exit_goals,omitempty"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r ExitRequest) Normalize() ExitRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.Industry = strings.TrimSpace(r.Industry)
	r.BusinessModelSummary = strings.TrimSpace(r.BusinessModelSummary)
	r.FundingStage = strings.TrimSpace(r.FundingStage)
	r.CompetitiveLandscapeSummary = strings.TrimSpace(r.CompetitiveLandscapeSummary)
	r.IPStatus = strings.TrimSpace(r.IPStatus)
	r.UniqueValueProposition = strings.TrimSpace(r.UniqueValueProposition)
	r.FounderExitGoals = strings.TrimSpace(r.FounderExitGoals)
	return r
}

// Validate checks required fields.
func (r ExitRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("industry", r.Industry); err != nil {
		return err
	}
	if err := required("business_model_summary", r.BusinessModelSummary); err != nil {
		return err
	}
	return required("funding_stage", r.FundingStage)
}

// AcquirerType names a kind of buyer or partner.
type AcquirerType struct {
	TypeName string `json:"type_name"`
}

// ActionItem is a concrete readiness step.
type ActionItem struct {
	Item string `json:"item"`
}

// ExitStrategy is one candidate exit route.
type ExitStrategy struct {
	StrategyName          string         `json:"strategy_name"`
	Description           string         `json:"description"`
	CommonAcquirerTypes   []AcquirerType `json:"common_acquirer_types"`
	AttractivenessMetrics []string       `json:"attractiveness_metrics"`
	ActionItems           []ActionItem   `json:"action_items"`
}

// ExitResult holds exit strategies and planning tips.
type ExitResult struct {
	StartupName            string         `json:"startup_name"`
	RelevantExitStrategies []ExitStrategy `json:"relevant_exit_strategies"`
	StrategicPlanningTips  []string       `json:"strategic_planning_tips"`
	Degraded               bool           `json:"degraded"`
}
