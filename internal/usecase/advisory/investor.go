package advisory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// Investor scoring weights.
const (
	weightIndustry      = 0.4
	weightTicket        = 0.3
	weightRisk          = 0.2
	bonusVeryPositive   = 0.1
	bonusPositive       = 0.05
	penaltyVeryNegative = 0.2
)

// MatchInvestors ranks the investor roster against a startup profile.
func (s *Service) MatchInvestors(ctx context.Context, req advisory.InvestorMatchRequest) advisory.InvestorMatchResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.InvestorMatchRequest, advisory.InvestorMatchResult]{
		Feature: advisory.FeatureInvestor,
		Plan:    s.planInvestor,
	}, req.Normalize())
}

// RankInvestors scores every roster entry and returns positive matches, best first.
func (s *Service) RankInvestors(req advisory.InvestorMatchRequest) []advisory.MatchDetail {
	risk := req.RiskProfile.OverallRiskScore
	sentiment := req.ReputationProfile.OverallSentimentScore

	matches := []advisory.MatchDetail{}
	for _, inv := range s.ref.Investors {
		score := 0.0
		reasons := []string{}
		gaps := []string{}

		if containsFold(inv.PreferredIndustries, req.Industry) {
			score += weightIndustry
			reasons = append(reasons, "Strong industry alignment: "+req.Industry)
		} else {
			gaps = append(gaps, fmt.Sprintf("Industry mismatch: investor typically prefers %s.",
				strings.Join(inv.PreferredIndustries, ", ")))
		}

		if inv.MinInvestmentUSD <= req.FundingSoughtUSD && req.FundingSoughtUSD <= inv.MaxInvestmentUSD {
			score += weightTicket
			reasons = append(reasons, fmt.Sprintf("Funding range matches investor's typical ticket size (%d - %d USD).",
				inv.MinInvestmentUSD, inv.MaxInvestmentUSD))
		} else {
			gaps = append(gaps, fmt.Sprintf("Funding range mismatch: you seek %d USD, investor's range is %d - %d USD.",
				req.FundingSoughtUSD, inv.MinInvestmentUSD, inv.MaxInvestmentUSD))
		}

		if riskBand(risk) == advisory.NormalizeLevel(inv.RiskTolerance) {
			score += weightRisk
			reasons = append(reasons, fmt.Sprintf("Risk tolerance alignment: your risk profile (%.0f%%) fits the investor's appetite for %s risk.",
				risk, inv.RiskTolerance))
		} else {
			gaps = append(gaps, fmt.Sprintf("Risk tolerance mismatch: your risk profile (%.0f%%) might not align with the investor's %s tolerance.",
				risk, inv.RiskTolerance))
		}

		switch {
		case sentiment > 0.7:
			score += bonusVeryPositive
			reasons = append(reasons, "Very strong positive early sentiment detected.")
		case sentiment < -0.7:
			score -= penaltyVeryNegative
			gaps = append(gaps, "Significant negative early sentiment detected. This will be a major concern for investors.")
		case sentiment > 0.3:
			score += bonusPositive
			reasons = append(reasons, "Moderately positive early sentiment.")
		}

		if score > 0 {
			matches = append(matches, advisory.MatchDetail{
				Investor:     inv,
				MatchScore:   round2(score * 100),
				MatchReasons: reasons,
				Gaps:         gaps,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

// riskBand maps a 0-100 risk score onto an investor tolerance level.
func riskBand(score float64) string {
	switch {
	case score >= 60:
		return advisory.LevelHigh
	case score >= 30:
		return advisory.LevelMedium
	default:
		return advisory.LevelLow
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}

func matchSummary(matches []advisory.MatchDetail) string {
	if len(matches) == 0 {
		return "No investors in the roster match this profile."
	}
	top := matches[0]
	return fmt.Sprintf("Found %d investor matches. The strongest is %s at %.2f%%.",
		len(matches), top.Investor.Name, top.MatchScore)
}

func (s *Service) planInvestor(_ context.Context, req advisory.InvestorMatchRequest) runner.Plan[advisory.InvestorMatchResult] {
	matches := s.RankInvestors(req)

	p := newPrompt("You are an AI fundraising advisor preparing investor outreach for a startup.").
		field("Startup Name", req.StartupName).
		field("Industry", req.Industry).
		field("Funding Sought (USD)", req.FundingSoughtUSD).
		field("Overall Risk Score", fmt.Sprintf("%.2f", req.RiskProfile.OverallRiskScore)).
		field("Sentiment Score", fmt.Sprintf("%.2f", req.ReputationProfile.OverallSentimentScore)).
		blank().
		line("Ranked investor matches:")
	if len(matches) == 0 {
		p.line("(none)")
	}
	for i, m := range matches {
		if i == 5 {
			break
		}
		p.line("- %s (%.2f%%). Reasons: %s. Gaps: %s.", m.Investor.Name, m.MatchScore,
			strings.Join(m.MatchReasons, "; "), strings.Join(m.Gaps, "; "))
	}
	p.blank().
		line("Summarise the fundraising position in 2-3 sentences and give 3-5 concrete outreach tips.")

	return runner.Plan[advisory.InvestorMatchResult]{
		Prompt: p.shape(`{
  "summary": "...",
  "outreach_advice": ["..."]
}`),
		Decode: func(v extract.Value) advisory.InvestorMatchResult {
			return advisory.InvestorMatchResult{
				StartupName:      req.StartupName,
				MatchedInvestors: matches,
				Summary:          v.Field("summary").String(matchSummary(matches)),
				OutreachAdvice:   v.Field("outreach_advice").Strings(),
			}
		},
		Fallback: func(err error) advisory.InvestorMatchResult {
			return advisory.InvestorMatchResult{
				StartupName:      req.StartupName,
				MatchedInvestors: matches,
				Summary:          matchSummary(matches) + " Narrative advice is unavailable. " + serviceError(err),
				OutreachAdvice:   []string{},
				Degraded:         true,
			}
		},
	}
}
