package advisory

import (
	"context"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// BuildBuzz drafts platform content around the startup's key message.
func (s *Service) BuildBuzz(ctx context.Context, req advisory.BuzzRequest) advisory.BuzzResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.BuzzRequest, advisory.BuzzResult]{
		Feature: advisory.FeatureBuzz,
		Plan:    s.planBuzz,
	}, req.Normalize())
}

func (s *Service) planBuzz(_ context.Context, req advisory.BuzzRequest) runner.Plan[advisory.BuzzResult] {
	milestones := "none yet"
	if len(req.CurrentMilestones) > 0 {
		milestones = strings.Join(req.CurrentMilestones, ", ")
	}

	p := newPrompt("You are an AI content strategist specializing in startup growth and public relations.").
		field("Startup Name", req.StartupName).
		field("Industry", req.YourIndustry).
		field("Current Milestones", milestones).
		field("Key Message", req.KeyMessage).
		field("Target Audience", req.TargetAudience).
		blank().
		line("Suggest content for these platforms:").
		line("1. Twitter Thread (4-5 tweets)").
		line("2. LinkedIn Post").
		line("3. Blog Post Idea (with 3-4 key points)").
		line("For each give a title, key content points, relevant hashtags and a call to action.").
		line("Finally give 3-5 tips for maximizing buzz.")

	return runner.Plan[advisory.BuzzResult]{
		Prompt: p.shape(`{
  "suggestions": [{
    "platform": "Twitter Thread",
    "title": "...",
    "content_points": ["..."],
    "hashtags": ["#..."],
    "call_to_action": "..."
  }],
  "ai_tips": ["..."]
}`),
		Decode: func(v extract.Value) advisory.BuzzResult {
			res := advisory.BuzzResult{
				StartupName: req.StartupName,
				Suggestions: []advisory.SocialPostSuggestion{},
				AITips:      v.Field("ai_tips").Strings(),
			}
			for _, it := range v.Field("suggestions").Items() {
				res.Suggestions = append(res.Suggestions, advisory.SocialPostSuggestion{
					Platform:      it.Field("platform").String("General"),
					Title:         it.Label("title", ""),
					ContentPoints: it.Field("content_points").Strings(),
					Hashtags:      hashtags(it.Field("hashtags").Strings()),
					CallToAction:  it.Field("call_to_action").String(""),
				})
			}
			return res
		},
		Fallback: func(err error) advisory.BuzzResult {
			return advisory.BuzzResult{
				StartupName: req.StartupName,
				Suggestions: []advisory.SocialPostSuggestion{{
					Platform:      "Error",
					Title:         "AI Generation Failed",
					ContentPoints: []string{"Could not generate content suggestions. " + serviceError(err)},
					Hashtags:      []string{},
					CallToAction:  "Please check API key or service status.",
				}},
				AITips:   []string{"AI service encountered an error."},
				Degraded: true,
			}
		},
	}
}

// hashtags prefixes each tag with '#' and drops inner spaces.
func hashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.Join(strings.Fields(strings.TrimLeft(t, "#")), "")
		if t != "" {
			out = append(out, "#"+t)
		}
	}
	return out
}
