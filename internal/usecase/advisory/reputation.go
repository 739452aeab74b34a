package advisory

import (
	"context"
	"regexp"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

var (
	positiveKeywords = newLexicon("innovative", "scalable", "breakthrough", "efficient", "growth", "disruptive", "strong", "promising", "unique")
	negativeKeywords = newLexicon("challenge", "risk", "expensive", "complex", "unproven", "slow", "weak", "uncertain", "doubt")
)

// lexicon is a keyword list with whole-word, case-insensitive matchers.
type lexicon struct {
	words    []string
	patterns []*regexp.Regexp
}

func newLexicon(words ...string) lexicon {
	l := lexicon{words: words, patterns: make([]*regexp.Regexp, len(words))}
	for i, w := range words {
		l.patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return l
}

// ScanReputation estimates early sentiment around a startup.
func (s *Service) ScanReputation(ctx context.Context, req advisory.ReputationRequest) advisory.ReputationResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.ReputationRequest, advisory.ReputationResult]{
		Feature: advisory.FeatureReputation,
		Plan:    s.planReputation,
	}, req.Normalize())
}

func reputationText(req advisory.ReputationRequest) string {
	text := req.InitialPitchText
	if req.FounderTwitterHandle != "" {
		text += " Founder is @" + req.FounderTwitterHandle + "."
	}
	if req.FounderLinkedInURL != "" {
		text += " Founder LinkedIn: " + req.FounderLinkedInURL + "."
	}
	return text
}

func (s *Service) planReputation(_ context.Context, req advisory.ReputationRequest) runner.Plan[advisory.ReputationResult] {
	text := reputationText(req)

	p := newPrompt("You are an AI reputation analyst reviewing how a startup is likely to be perceived.").
		field("Startup Name", req.StartupName).
		field("Founder Twitter", req.FounderTwitterHandle).
		field("Founder LinkedIn", req.FounderLinkedInURL).
		blank().
		line("Text to analyse:").
		line("%s", req.InitialPitchText).
		blank().
		line("Score the overall sentiment from -1.0 (most negative) to 1.0 (most positive).").
		line("List the themes driving positive, negative and neutral perception, and 2-4 actionable insights.")

	return runner.Plan[advisory.ReputationResult]{
		Prompt: p.shape(`{
  "overall_sentiment_score": 0.0,
  "positive_themes": ["..."],
  "negative_themes": ["..."],
  "neutral_themes": ["..."],
  "actionable_insights": ["..."]
}`),
		Decode: func(v extract.Value) advisory.ReputationResult {
			return advisory.ReputationResult{
				StartupName:           req.StartupName,
				OverallSentimentScore: round2(extract.Clamp(v.Field("overall_sentiment_score").Float(0), -1, 1)),
				PositiveThemes:        v.Field("positive_themes").Strings(),
				NegativeThemes:        v.Field("negative_themes").Strings(),
				NeutralThemes:         v.Field("neutral_themes").Strings(),
				ActionableInsights:    v.Field("actionable_insights").Strings(),
			}
		},
		Fallback: func(err error) advisory.ReputationResult {
			res := keywordReputation(req.StartupName, text)
			res.ActionableInsights = append([]string{
				"Sentiment scoring is unavailable; themes were spotted by keyword only. " + serviceError(err),
			}, res.ActionableInsights...)
			res.Degraded = true
			return res
		},
	}
}

// keywordReputation spots lexicon themes and reports a neutral score.
func keywordReputation(name, text string) advisory.ReputationResult {
	res := advisory.ReputationResult{
		StartupName:        name,
		PositiveThemes:     spotKeywords(text, positiveKeywords),
		NegativeThemes:     spotKeywords(text, negativeKeywords),
		NeutralThemes:      []string{},
		ActionableInsights: []string{},
	}

	switch {
	case len(res.PositiveThemes) > len(res.NegativeThemes):
		res.ActionableInsights = append(res.ActionableInsights,
			"Capitalize on positive language. Highlight these strengths in your messaging.")
	case len(res.NegativeThemes) > len(res.PositiveThemes):
		res.ActionableInsights = append(res.ActionableInsights,
			"Address concerns directly. Develop a communication strategy to mitigate doubts and build trust.")
	default:
		res.NeutralThemes = append(res.NeutralThemes, "neutral sentiment or mixed signals")
		res.ActionableInsights = append(res.ActionableInsights,
			"Focus on clearly articulating your value proposition to move sentiment from neutral to positive.",
			"Seek early feedback to identify areas of confusion or potential concerns.")
	}
	return res
}

func spotKeywords(text string, keywords lexicon) []string {
	found := []string{}
	for i, re := range keywords.patterns {
		if re.MatchString(text) {
			found = append(found, strings.ToLower(keywords.words[i]))
		}
	}
	return found
}
