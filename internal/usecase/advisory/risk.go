package advisory

import (
	"context"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// AnalyzeRisk scores a startup's risk profile.
func (s *Service) AnalyzeRisk(ctx context.Context, req advisory.RiskRequest) advisory.RiskResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.RiskRequest, advisory.RiskResult]{
		Feature: advisory.FeatureRisk,
		Plan:    s.planRisk,
	}, req.Normalize())
}

// RiskBaseline applies the risk-rule table to req.
func (s *Service) RiskBaseline(req advisory.RiskRequest) advisory.RiskResult {
	values := map[string]float64{
		"market_size_usd":            float64(req.MarketSizeUSD),
		"founder_experience_years":   float64(req.FounderExperienceYears),
		"initial_funding_needed_usd": float64(req.InitialFundingNeededUSD),
	}

	res := advisory.RiskResult{
		StartupName:     req.StartupName,
		RiskFactors:     []advisory.RiskFactor{},
		Recommendations: []string{},
	}
	var total float64
	for _, dim := range s.ref.RiskRules.Dimensions {
		v, ok := values[dim.Field]
		if !ok {
			continue
		}
		band, ok := dim.Match(v)
		if !ok {
			continue
		}
		total += band.Points
		res.RiskFactors = append(res.RiskFactors, advisory.RiskFactor{
			Name:                 dim.Name,
			Level:                advisory.NormalizeLevel(band.Level),
			MitigationSuggestion: band.Mitigation,
		})
		if band.Recommendation != "" {
			res.Recommendations = append(res.Recommendations, band.Recommendation)
		}
	}
	res.OverallRiskScore = round2(min(total/s.ref.RiskRules.MaxScore*100, 100))
	return res
}

func (s *Service) planRisk(_ context.Context, req advisory.RiskRequest) runner.Plan[advisory.RiskResult] {
	baseline := s.RiskBaseline(req)

	p := newPrompt("You are an AI venture analyst assessing early-stage startup risk.").
		field("Startup Name", req.StartupName).
		field("Industry", req.Industry).
		field("Total Addressable Market (USD)", req.MarketSizeUSD).
		field("Founder Experience (years)", req.FounderExperienceYears).
		field("Initial Funding Needed (USD)", req.InitialFundingNeededUSD).
		blank().
		line("A rule-based screen produced an overall risk score of %.2f with these factors:", baseline.OverallRiskScore)
	for _, f := range baseline.RiskFactors {
		p.line("- %s: %s (%s)", f.Name, f.Level, f.MitigationSuggestion)
	}
	p.blank().
		line("Refine this assessment. Score overall risk from 0 (safest) to 100 (riskiest).").
		line("Identify 3-6 risk factors with a level of low, medium or high and a concrete mitigation.").
		line("Give 2-4 general recommendations.")

	return runner.Plan[advisory.RiskResult]{
		Prompt: p.shape(`{
  "overall_risk_score": 0,
  "risk_factors": [{"name": "...", "level": "low|medium|high", "mitigation_suggestion": "..."}],
  "recommendations": ["..."]
}`),
		Decode: func(v extract.Value) advisory.RiskResult {
			return decodeRisk(req, v)
		},
		Fallback: func(err error) advisory.RiskResult {
			res := baseline
			res.RiskFactors = append(res.RiskFactors, advisory.RiskFactor{
				Name:                 advisory.ServiceErrorName,
				Level:                advisory.LevelMedium,
				MitigationSuggestion: "Risk refinement unavailable, showing rule-based screen. " + serviceError(err),
			})
			res.Degraded = true
			return res
		},
	}
}

func decodeRisk(req advisory.RiskRequest, v extract.Value) advisory.RiskResult {
	res := advisory.RiskResult{
		StartupName:      req.StartupName,
		OverallRiskScore: round2(extract.Clamp(v.Field("overall_risk_score").Float(advisory.DefaultRiskScore), 0, 100)),
		RiskFactors:      []advisory.RiskFactor{},
		Recommendations:  v.Field("recommendations").Strings(),
	}
	for _, it := range v.Field("risk_factors").Items() {
		res.RiskFactors = append(res.RiskFactors, advisory.RiskFactor{
			Name:                 it.Label("name", "Unnamed risk"),
			Level:                advisory.NormalizeLevel(it.Field("level").String("")),
			MitigationSuggestion: it.Field("mitigation_suggestion").String(""),
		})
	}
	return res
}
