package advisory

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
)

func TestTractionBaseline_Score(t *testing.T) {
	f := newFixture(t, "")

	res := f.svc.TractionBaseline(advisory.TractionRequest{
		StartupName:        "Acme",
		YourIndustry:       "saas",
		MonthlyActiveUsers: ptr(13_000.0),
		ChurnRatePercent:   ptr(4.5),
	})

	if res.GrowthHealthScore != 87.5 {
		t.Errorf("score = %v, want 87.5", res.GrowthHealthScore)
	}
	if len(res.Benchmarks) != 6 {
		t.Fatalf("expected 6 benchmarks, got %d", len(res.Benchmarks))
	}
	want := map[string]string{
		"Monthly Active Users":            ComparisonMuchBetter,
		"Churn Rate (%)":                  ComparisonBetter,
		"Monthly Recurring Revenue (USD)": ComparisonNotProvided,
	}
	for _, b := range res.Benchmarks {
		if c, ok := want[b.Metric]; ok && b.Comparison != c {
			t.Errorf("%s: comparison = %q, want %q", b.Metric, b.Comparison, c)
		}
	}
}

func TestTractionBaseline_NoMetrics(t *testing.T) {
	f := newFixture(t, "")

	res := f.svc.TractionBaseline(advisory.TractionRequest{StartupName: "Acme", YourIndustry: "Gaming"})

	if res.GrowthHealthScore != NeutralGrowthScore {
		t.Errorf("score = %v, want %v", res.GrowthHealthScore, NeutralGrowthScore)
	}
	if res.Benchmarks[0].IndustryAverage != 10_000 {
		t.Errorf("unknown industry should use the default table, got %v", res.Benchmarks[0].IndustryAverage)
	}
}

func TestCompareMetric(t *testing.T) {
	tests := []struct {
		v, avg      float64
		lowerBetter bool
		want        string
		points      float64
	}{
		{130, 100, false, ComparisonMuchBetter, 20},
		{110, 100, false, ComparisonBetter, 10},
		{100, 100, false, ComparisonAverage, 5},
		{90, 100, false, ComparisonWorse, -10},
		{70, 100, false, ComparisonMuchWorse, -20},
		{70, 100, true, ComparisonMuchBetter, 20},
		{130, 100, true, ComparisonMuchWorse, -20},
	}
	for _, tt := range tests {
		got, points := compareMetric(tt.v, tt.avg, tt.lowerBetter)
		if got != tt.want || points != tt.points {
			t.Errorf("compareMetric(%v, %v, %v) = %q, %v; want %q, %v",
				tt.v, tt.avg, tt.lowerBetter, got, points, tt.want, tt.points)
		}
	}
}

func TestEstimateTraction_InsightsShapes(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  int
	}{
		{"root array", `["Grow MAU", "Cut churn"]`, 2},
		{"wrapped", `{"ai_insights": ["Grow MAU"]}`, 1},
		{"single string", `{"insights": "Grow MAU"}`, 1},
		{"bare string", `"Focus on reducing churn"`, 1},
		{"object with one text member", `{"tip": "Focus on reducing churn"}`, 1},
		{"list under another key", `{"recommendations": ["Grow MAU", "Cut churn", "Raise prices"]}`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.reply)
			res := f.svc.EstimateTraction(context.Background(), advisory.TractionRequest{StartupName: "Acme", YourIndustry: "AI"})
			if res.Degraded || len(res.AIInsights) != tt.want {
				t.Errorf("unexpected result: %+v", res)
			}
			for _, in := range res.AIInsights {
				if in == "" {
					t.Errorf("empty insight in %v", res.AIInsights)
				}
			}
		})
	}
}

func TestEstimateTraction_FallbackKeepsBenchmarks(t *testing.T) {
	f := newFixture(t, "")
	f.completer.set("", errors.New("down"))

	res := f.svc.EstimateTraction(context.Background(), advisory.TractionRequest{
		StartupName:        "Acme",
		YourIndustry:       "AI",
		MonthlyActiveUsers: ptr(1000.0),
	})

	if !res.Degraded || len(res.Benchmarks) != 6 || len(res.AIInsights) != 1 {
		t.Errorf("unexpected fallback: %+v", res)
	}
	if res.GrowthHealthScore != 0 {
		t.Errorf("score = %v, want 0", res.GrowthHealthScore)
	}
}
