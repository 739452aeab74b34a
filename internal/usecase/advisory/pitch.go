package advisory

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

const (
	shortPitchLength = 150
	longPitchLength  = 1500
)

type pitchCheck struct {
	keywords   []string
	feedback   string
	suggestion string
}

var pitchChecks = []pitchCheck{
	{
		keywords:   []string{"problem", "challenge", "issue", "pain point"},
		feedback:   "The core problem you're solving is not explicitly clear.",
		suggestion: "Start by clearly and concisely defining the significant problem your startup addresses.",
	},
	{
		keywords:   []string{"solution", "product", "service", "how it works", "platform"},
		feedback:   "Your proposed solution/product is not clearly articulated.",
		suggestion: "Detail your solution, how it works, and its unique value proposition.",
	},
	{
		keywords:   []string{"market", "target audience", "customers", "tam", "sam", "som"},
		feedback:   "Missing details on your market size or target customer.",
		suggestion: "Quantify your market opportunity and describe your ideal customer segment.",
	},
	{
		keywords:   []string{"team", "founders", "experience", "background"},
		feedback:   "The pitch lacks information about your team's expertise or background.",
		suggestion: "Highlight your team's relevant experience and why you are uniquely qualified to build this business.",
	},
	{
		keywords:   []string{"traction", "users", "revenue", "growth", "metrics"},
		feedback:   "Little to no mention of early traction or key metrics.",
		suggestion: "If you have any users, revenue, or significant milestones, include them to demonstrate progress.",
	},
	{
		keywords:   []string{"ask", "raise", "funding", "investment", "seeking"},
		feedback:   "Your 'ask' (funding amount and use of funds) is not clear.",
		suggestion: "State clearly how much capital you are raising and how you plan to use it to achieve milestones.",
	},
}

// PitchFeedback reviews a pitch, folding in any upstream analyses.
func (s *Service) PitchFeedback(ctx context.Context, req advisory.PitchFeedbackRequest) advisory.PitchFeedbackResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.PitchFeedbackRequest, advisory.PitchFeedbackResult]{
		Feature: advisory.FeaturePitch,
		Plan:    s.planPitch,
	}, req.Normalize())
}

// PitchHeuristics runs the structural checks and upstream-result hints.
func PitchHeuristics(req advisory.PitchFeedbackRequest) advisory.PitchFeedbackResult {
	feedback := []string{}
	suggestions := []string{}
	add := func(f, s string) {
		if f != "" {
			feedback = append(feedback, f)
		}
		if s != "" {
			suggestions = append(suggestions, s)
		}
	}

	lower := strings.ToLower(req.PitchText)
	switch n := len(req.PitchText); {
	case n < shortPitchLength:
		add("Pitch is quite short.",
			"Consider expanding on key sections like problem, solution, market, and team. Aim for a concise but comprehensive overview.")
	case n > longPitchLength:
		add("Pitch might be too long.",
			"Focus on conciseness. Can you convey your core message more efficiently? Investors have limited time.")
	}

	for _, c := range pitchChecks {
		if !mentionsAny(lower, c.keywords) {
			add(c.feedback, c.suggestion)
		}
	}

	if rp := req.RiskProfile; rp != nil {
		for _, rf := range rp.RiskFactors {
			if advisory.NormalizeLevel(rf.Level) != advisory.LevelHigh {
				continue
			}
			add(fmt.Sprintf("High risk identified in '%s' (Score: %.2f%% overall risk).", rf.Name, rp.OverallRiskScore),
				fmt.Sprintf("Explicitly address how you plan to mitigate the '%s' risk. For example: '%s'", rf.Name, rf.MitigationSuggestion))
			if strings.Contains(lower, strings.ToLower(rf.Name)) {
				add(fmt.Sprintf("Good job mentioning '%s' in your pitch, but ensure your mitigation strategy is clear.", rf.Name), "")
			}
		}
	}

	if rep := req.ReputationProfile; rep != nil {
		switch score := rep.OverallSentimentScore; {
		case score < -0.3:
			add(fmt.Sprintf("Early sentiment is moderately negative (Score: %.2f).", score),
				"Consider acknowledging potential negative perceptions (if any) and articulate how you plan to build positive public perception.")
		case score > 0.3:
			add(fmt.Sprintf("Early sentiment is positive (Score: %.2f).", score),
				"Emphasize aspects that contribute to positive sentiment (e.g., 'innovative' or 'growth' if identified as themes).")
		}
	}

	if im := req.InvestorMatchResults; im != nil && len(im.MatchedInvestors) > 0 {
		top := im.MatchedInvestors[0]
		add(fmt.Sprintf("Your top investor match is '%s' with a score of %.2f%%.", top.Investor.Name, top.MatchScore), "")
		if len(top.Gaps) > 0 {
			add("Identify specific gaps that might deter investors:",
				fmt.Sprintf("For investors like '%s', consider refining your pitch to address these gaps: %s.",
					top.Investor.Name, strings.Join(top.Gaps, "; ")))
		}
		if len(top.Investor.FeedbackFocus) > 0 {
			add("", fmt.Sprintf("For investors like '%s', they often focus on: %s. Tailor your pitch to emphasize these areas.",
				top.Investor.Name, strings.Join(top.Investor.FeedbackFocus, ", ")))
		}
	}

	if len(feedback) == 0 {
		add("Your pitch seems to cover essential elements well!",
			"Focus on refining your delivery, storytelling, and compelling call to action. Practice makes perfect!")
	}

	return advisory.PitchFeedbackResult{
		StartupName:               req.StartupName,
		Feedback:                  feedback,
		SuggestionsForImprovement: suggestions,
	}
}

func mentionsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func (s *Service) planPitch(_ context.Context, req advisory.PitchFeedbackRequest) runner.Plan[advisory.PitchFeedbackResult] {
	baseline := PitchHeuristics(req)

	p := newPrompt("You are an experienced startup pitch coach reviewing a founder's pitch.").
		field("Startup Name", req.StartupName).
		blank().
		line("Pitch:").
		line("%s", req.PitchText).
		blank().
		line("An automated structure check noted:")
	for _, f := range baseline.Feedback {
		p.line("- %s", f)
	}
	if req.RiskProfile != nil {
		p.field("Overall Risk Score", fmt.Sprintf("%.2f", req.RiskProfile.OverallRiskScore))
	}
	if req.ReputationProfile != nil {
		p.field("Sentiment Score", fmt.Sprintf("%.2f", req.ReputationProfile.OverallSentimentScore))
	}
	if req.InvestorMatchResults != nil && len(req.InvestorMatchResults.MatchedInvestors) > 0 {
		top := req.InvestorMatchResults.MatchedInvestors[0]
		p.field("Top Investor Match", fmt.Sprintf("%s (%.2f%%)", top.Investor.Name, top.MatchScore))
	}
	p.blank().
		line("Give 3-6 specific feedback points and a matching list of suggestions for improvement.")

	return runner.Plan[advisory.PitchFeedbackResult]{
		Prompt: p.shape(`{
  "feedback": ["..."],
  "suggestions_for_improvement": ["..."]
}`),
		Decode: func(v extract.Value) advisory.PitchFeedbackResult {
			res := advisory.PitchFeedbackResult{
				StartupName:               req.StartupName,
				Feedback:                  v.Field("feedback").Strings(),
				SuggestionsForImprovement: v.Field("suggestions_for_improvement").Strings(),
			}
			if len(res.Feedback) == 0 && len(res.SuggestionsForImprovement) == 0 {
				return baseline
			}
			return res
		},
		Fallback: func(err error) advisory.PitchFeedbackResult {
			res := baseline
			res.Feedback = append(res.Feedback, "Detailed coaching is unavailable, showing the automated structure check. "+serviceError(err))
			res.Degraded = true
			return res
		},
	}
}
