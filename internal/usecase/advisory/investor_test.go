package advisory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
)

func investorRequest(sentiment float64) advisory.InvestorMatchRequest {
	return advisory.InvestorMatchRequest{
		StartupName:       "Acme",
		Industry:          "AI",
		FundingSoughtUSD:  100_000,
		RiskProfile:       advisory.RiskResult{OverallRiskScore: 17.33},
		ReputationProfile: advisory.ReputationResult{OverallSentimentScore: sentiment},
	}
}

func TestRankInvestors_Order(t *testing.T) {
	f := newFixture(t, "")

	matches := f.svc.RankInvestors(investorRequest(0.8))

	wantIDs := []string{"inv-001", "inv-004", "inv-008", "inv-006", "inv-002", "inv-007", "inv-003", "inv-005"}
	wantScores := []float64{80, 80, 80, 50, 30, 30, 10, 10}
	if len(matches) != len(wantIDs) {
		t.Fatalf("expected %d matches, got %d", len(wantIDs), len(matches))
	}
	for i, m := range matches {
		if m.Investor.ID != wantIDs[i] || m.MatchScore != wantScores[i] {
			t.Errorf("match %d = %s (%v), want %s (%v)", i, m.Investor.ID, m.MatchScore, wantIDs[i], wantScores[i])
		}
	}
	if !strings.HasPrefix(matches[0].MatchReasons[0], "Strong industry alignment") {
		t.Errorf("unexpected reasons: %v", matches[0].MatchReasons)
	}
}

func TestRankInvestors_NegativeSentimentDropsMarginalMatches(t *testing.T) {
	f := newFixture(t, "")
	req := investorRequest(-0.8)
	req.Industry = "Gaming"
	req.FundingSoughtUSD = 50_000_000

	matches := f.svc.RankInvestors(req)

	if len(matches) != 0 {
		t.Errorf("expected no positive matches, got %+v", matches)
	}
}

func TestMatchInvestors_FallbackKeepsMatches(t *testing.T) {
	f := newFixture(t, "")
	f.completer.set("", errors.New("timeout"))

	res := f.svc.MatchInvestors(context.Background(), investorRequest(0.8))

	if !res.Degraded {
		t.Fatal("expected degraded result")
	}
	if len(res.MatchedInvestors) != 8 {
		t.Errorf("deterministic matches should survive, got %d", len(res.MatchedInvestors))
	}
	if res.OutreachAdvice == nil {
		t.Error("outreach advice must not be nil")
	}
}

func TestMatchInvestors_Success(t *testing.T) {
	f := newFixture(t, `{"summary": "Good fit for pre-seed AI funds.", "outreach_advice": ["Lead with traction."]}`)

	res := f.svc.MatchInvestors(context.Background(), investorRequest(0.8))

	if res.Degraded || res.Summary != "Good fit for pre-seed AI funds." {
		t.Errorf("unexpected result: %+v", res)
	}
	if !strings.Contains(f.completer.lastPrompt(), "Horizon Seed Partners") {
		t.Error("prompt should list the ranked investors")
	}
}
