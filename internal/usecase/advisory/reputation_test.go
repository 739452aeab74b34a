package advisory

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
)

func TestScanReputation_ClampsScore(t *testing.T) {
	f := newFixture(t, `{"overall_sentiment_score": "3.5", "positive_themes": ["speed"]}`)

	res := f.svc.ScanReputation(context.Background(), advisory.ReputationRequest{
		StartupName:      "Acme",
		InitialPitchText: "An innovative and scalable analytics platform for small retailers.",
	})

	if res.OverallSentimentScore != 1 {
		t.Errorf("score = %v, want 1", res.OverallSentimentScore)
	}
	if res.NegativeThemes == nil || res.NeutralThemes == nil || res.ActionableInsights == nil {
		t.Errorf("lists must not be nil: %+v", res)
	}
}

func TestScanReputation_FallbackUsesLexicon(t *testing.T) {
	f := newFixture(t, "")
	f.completer.set("", errors.New("down"))

	res := f.svc.ScanReputation(context.Background(), advisory.ReputationRequest{
		StartupName:      "Acme",
		InitialPitchText: "An innovative, scalable platform with strong growth despite one regulatory challenge.",
	})

	if !res.Degraded || res.OverallSentimentScore != 0 {
		t.Fatalf("unexpected fallback: %+v", res)
	}
	if !slices.Equal(res.PositiveThemes, []string{"innovative", "scalable", "growth", "strong"}) {
		t.Errorf("positive themes = %v", res.PositiveThemes)
	}
	if !slices.Equal(res.NegativeThemes, []string{"challenge"}) {
		t.Errorf("negative themes = %v", res.NegativeThemes)
	}
	if len(res.ActionableInsights) != 2 {
		t.Errorf("expected failure note plus one insight, got %v", res.ActionableInsights)
	}
}

func TestKeywordReputation_Balanced(t *testing.T) {
	res := keywordReputation("Acme", "A plain description of what we do.")

	if !slices.Equal(res.NeutralThemes, []string{"neutral sentiment or mixed signals"}) {
		t.Errorf("neutral themes = %v", res.NeutralThemes)
	}
	if len(res.ActionableInsights) != 2 {
		t.Errorf("insights = %v", res.ActionableInsights)
	}
}

func TestSpotKeywords_WholeWordsIgnoringCase(t *testing.T) {
	got := spotKeywords("Risky bets carry RISK; growth-stage doubts linger.", negativeKeywords)
	if !slices.Equal(got, []string{"risk"}) {
		t.Errorf("negative = %v, want [risk]", got)
	}

	if got := spotKeywords("Strong GROWTH", positiveKeywords); !slices.Equal(got, []string{"growth", "strong"}) {
		t.Errorf("positive = %v, want [growth strong]", got)
	}
}
