package advisory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
)

func riskRequest() advisory.RiskRequest {
	return advisory.RiskRequest{
		StartupName:             "Acme",
		Industry:                "AI",
		MarketSizeUSD:           2_000_000_000,
		FounderExperienceYears:  8,
		InitialFundingNeededUSD: 100_000,
	}
}

func TestAnalyzeRisk_Success(t *testing.T) {
	f := newFixture(t, "```json\n"+`{
  "overall_risk_score": 20,
  "risk_factors": [{"name": "Market Size", "level": "LOW", "mitigation_suggestion": "Keep watching."}],
  "recommendations": "Hire a CFO."
}`+"\n```")

	res := f.svc.AnalyzeRisk(context.Background(), riskRequest())

	if res.Degraded {
		t.Fatal("expected non-degraded result")
	}
	if res.StartupName != "Acme" || res.OverallRiskScore != 20 {
		t.Errorf("unexpected result: %+v", res)
	}
	if len(res.RiskFactors) != 1 || res.RiskFactors[0].Level != advisory.LevelLow {
		t.Errorf("unexpected factors: %+v", res.RiskFactors)
	}
	if len(res.Recommendations) != 1 || res.Recommendations[0] != "Hire a CFO." {
		t.Errorf("scalar recommendation should become a list: %v", res.Recommendations)
	}
	if !strings.Contains(f.completer.lastPrompt(), "17.33") {
		t.Error("prompt should carry the rule-based baseline score")
	}
}

func TestAnalyzeRisk_CacheHitSkipsBackend(t *testing.T) {
	f := newFixture(t, `{"overall_risk_score": 20}`)
	ctx := context.Background()

	first := f.svc.AnalyzeRisk(ctx, riskRequest())
	f.completer.set("", errors.New("quota exceeded"))

	req := riskRequest()
	req.StartupName = "  Acme "
	second := f.svc.AnalyzeRisk(ctx, req)

	if f.completer.calls() != 1 {
		t.Errorf("expected 1 backend call, got %d", f.completer.calls())
	}
	if second.Degraded || second.OverallRiskScore != first.OverallRiskScore {
		t.Errorf("expected cached result, got %+v", second)
	}
}

func TestAnalyzeRisk_DefaultsForMissingFields(t *testing.T) {
	f := newFixture(t, `{"risk_factors": [{"name": "Team"}, "Regulation"]}`)

	res := f.svc.AnalyzeRisk(context.Background(), riskRequest())

	if res.OverallRiskScore != advisory.DefaultRiskScore {
		t.Errorf("expected default score, got %v", res.OverallRiskScore)
	}
	if len(res.RiskFactors) != 2 {
		t.Fatalf("expected 2 factors, got %+v", res.RiskFactors)
	}
	if res.RiskFactors[0].Level != advisory.LevelMedium {
		t.Errorf("missing level should default to medium, got %q", res.RiskFactors[0].Level)
	}
	if res.RiskFactors[1].Name != "Regulation" {
		t.Errorf("scalar factor should become its name, got %q", res.RiskFactors[1].Name)
	}
	if res.Recommendations == nil {
		t.Error("recommendations must not be nil")
	}
}

func TestAnalyzeRisk_FallbackKeepsBaseline(t *testing.T) {
	f := newFixture(t, "")
	f.completer.set("", errors.New("upstream 503"))

	req := riskRequest()
	req.MarketSizeUSD = 100_000_000
	req.FounderExperienceYears = 1
	req.InitialFundingNeededUSD = 5_000_000
	res := f.svc.AnalyzeRisk(context.Background(), req)

	if !res.Degraded {
		t.Fatal("expected degraded result")
	}
	if res.OverallRiskScore != 100 {
		t.Errorf("expected maximum baseline score, got %v", res.OverallRiskScore)
	}
	last := res.RiskFactors[len(res.RiskFactors)-1]
	if last.Name != advisory.ServiceErrorName || !strings.Contains(last.MitigationSuggestion, "upstream 503") {
		t.Errorf("expected service error factor, got %+v", last)
	}
	if len(res.Recommendations) != 3 {
		t.Errorf("expected 3 baseline recommendations, got %v", res.Recommendations)
	}
}

func TestRiskBaseline(t *testing.T) {
	f := newFixture(t, "")

	tests := []struct {
		name   string
		market int64
		years  int
		fund   int64
		want   float64
		levels []string
	}{
		{"all low", 2_000_000_000, 8, 100_000, 17.33, []string{"low", "low", "low"}},
		{"all medium", 700_000_000, 3, 500_000, 46.67, []string{"medium", "medium", "medium"}},
		{"all high", 1_000_000, 0, 2_000_000, 100, []string{"high", "high", "high"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.svc.RiskBaseline(advisory.RiskRequest{
				StartupName:             "Acme",
				MarketSizeUSD:           tt.market,
				FounderExperienceYears:  tt.years,
				InitialFundingNeededUSD: tt.fund,
			})
			if res.OverallRiskScore != tt.want {
				t.Errorf("score = %v, want %v", res.OverallRiskScore, tt.want)
			}
			for i, lvl := range tt.levels {
				if res.RiskFactors[i].Level != lvl {
					t.Errorf("factor %d level = %q, want %q", i, res.RiskFactors[i].Level, lvl)
				}
			}
		})
	}
}
