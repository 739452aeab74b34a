package advisory

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// ExploreExitStrategies suggests exit routes and readiness steps.
func (s *Service) ExploreExitStrategies(ctx context.Context, req advisory.ExitRequest) advisory.ExitResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.ExitRequest, advisory.ExitResult]{
		Feature: advisory.FeatureExit,
		Plan:    s.planExit,
	}, req.Normalize())
}

func (s *Service) planExit(_ context.Context, req advisory.ExitRequest) runner.Plan[advisory.ExitResult] {
	p := newPrompt("You are an AI strategic advisor helping startup founders plan long-term growth and exit strategies.").
		field("Startup Name", req.StartupName).
		field("Industry", req.Industry).
		field("Business Model Summary", req.BusinessModelSummary).
		field("Funding Stage", req.FundingStage)
	if req.CurrentRevenueUSD != nil {
		p.field("Current Revenue (USD)", fmt.Sprintf("%.2f", *req.CurrentRevenueUSD))
	}
	if req.MonthlyActiveUsers != nil {
		p.field("Monthly Active Users", *req.MonthlyActiveUsers)
	}
	p.field("Competitive Landscape", req.CompetitiveLandscapeSummary).
		field("IP Status", req.IPStatus).
		field("Unique Value Proposition", req.UniqueValueProposition).
		field("Founder Exit Goals", req.FounderExitGoals).
		blank().
		line("Identify the 2-3 most relevant exit strategies (e.g. strategic acquisition, IPO, management buyout).").
		line("For each, describe it, name common acquirer or partner types, list 3-5 attractiveness metrics,").
		line("and suggest 3-5 steps the startup can take now. Also give 3-5 strategic planning tips.")

	return runner.Plan[advisory.ExitResult]{
		Prompt: p.shape(`{
  "relevant_exit_strategies": [{
    "strategy_name": "...",
    "description": "...",
    "common_acquirer_types": ["..."],
    "attractiveness_metrics": ["..."],
    "action_items": ["..."]
  }],
  "strategic_planning_tips": ["..."]
}`),
		Decode: func(v extract.Value) advisory.ExitResult {
			res := advisory.ExitResult{
				StartupName:            req.StartupName,
				RelevantExitStrategies: []advisory.ExitStrategy{},
				StrategicPlanningTips:  v.Field("strategic_planning_tips").Strings(),
			}
			for _, it := range v.Field("relevant_exit_strategies").Items() {
				st := advisory.ExitStrategy{
					StrategyName:          it.Label("strategy_name", "Unknown Strategy"),
					Description:           it.Field("description").String("N/A"),
					CommonAcquirerTypes:   []advisory.AcquirerType{},
					AttractivenessMetrics: it.Field("attractiveness_metrics").Strings(),
					ActionItems:           []advisory.ActionItem{},
				}
				for _, a := range it.Field("common_acquirer_types").Items() {
					if name := a.Field("type_name").String(a.String("")); name != "" {
						st.CommonAcquirerTypes = append(st.CommonAcquirerTypes, advisory.AcquirerType{TypeName: name})
					}
				}
				for _, a := range it.Field("action_items").Items() {
					if item := a.Field("item").String(a.String("")); item != "" {
						st.ActionItems = append(st.ActionItems, advisory.ActionItem{Item: item})
					}
				}
				res.RelevantExitStrategies = append(res.RelevantExitStrategies, st)
			}
			return res
		},
		Fallback: func(err error) advisory.ExitResult {
			st := advisory.ExitStrategy{
				StrategyName:          advisory.ServiceErrorName,
				Description:           "Exit strategy guidance could not be generated.",
				CommonAcquirerTypes:   []advisory.AcquirerType{},
				AttractivenessMetrics: []string{},
				ActionItems:           []advisory.ActionItem{{Item: serviceError(err) + "."}},
			}
			if errors.Is(err, domain.ErrMalformedOutput) {
				st.StrategyName = "AI Response Error"
				st.Description = "Could not parse AI guidance. Response format was incorrect."
				st.ActionItems = []advisory.ActionItem{{Item: fmt.Sprintf("AI returned malformed JSON: %v.", err)}}
			}
			return advisory.ExitResult{
				StartupName:            req.StartupName,
				RelevantExitStrategies: []advisory.ExitStrategy{st},
				StrategicPlanningTips:  []string{"Please check API key or service status."},
				Degraded:               true,
			}
		},
	}
}
