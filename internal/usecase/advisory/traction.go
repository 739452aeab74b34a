package advisory

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// Benchmark comparisons.
const (
	ComparisonMuchBetter  = "Significantly better than average"
	ComparisonBetter      = "Better than average"
	ComparisonWorse       = "Worse than average"
	ComparisonMuchWorse   = "Significantly worse than average"
	ComparisonAverage     = "Around industry average"
	ComparisonNotProvided = "Not provided, cannot benchmark"
)

// NeutralGrowthScore is reported when no metric was provided.
const NeutralGrowthScore = 50.0

type tractionMetric struct {
	key         string
	name        string
	lowerBetter bool
	value       func(advisory.TractionRequest) *float64
}

var tractionMetrics = []tractionMetric{
	{"monthly_active_users", "Monthly Active Users", false,
		func(r advisory.TractionRequest) *float64 { return r.MonthlyActiveUsers }},
	{"monthly_recurring_revenue_usd", "Monthly Recurring Revenue (USD)", false,
		func(r advisory.TractionRequest) *float64 { return r.MonthlyRecurringRevenue }},
	{"customer_acquisition_cost_usd", "Customer Acquisition Cost (USD)", true,
		func(r advisory.TractionRequest) *float64 { return r.CustomerAcquisitionCost }},
	{"customer_lifetime_value_usd", "Customer Lifetime Value (USD)", false,
		func(r advisory.TractionRequest) *float64 { return r.CustomerLifetimeValue }},
	{"churn_rate_percent", "Churn Rate (%)", true,
		func(r advisory.TractionRequest) *float64 { return r.ChurnRatePercent }},
	{"conversion_rate_percent", "Conversion Rate (%)", false,
		func(r advisory.TractionRequest) *float64 { return r.ConversionRatePercent }},
}

// EstimateTraction benchmarks growth metrics against industry averages.
func (s *Service) EstimateTraction(ctx context.Context, req advisory.TractionRequest) advisory.TractionResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.TractionRequest, advisory.TractionResult]{
		Feature: advisory.FeatureTraction,
		Plan:    s.planTraction,
	}, req.Normalize())
}

// TractionBaseline computes benchmarks and the growth health score.
func (s *Service) TractionBaseline(req advisory.TractionRequest) advisory.TractionResult {
	_, bench := s.ref.Benchmarks.For(req.YourIndustry)

	res := advisory.TractionResult{
		StartupName:       req.StartupName,
		GrowthHealthScore: NeutralGrowthScore,
		Benchmarks:        make([]advisory.TractionBenchmark, 0, len(tractionMetrics)),
		AIInsights:        []string{},
	}
	var sum float64
	var n int
	for _, m := range tractionMetrics {
		v := m.value(req)
		avg := bench[m.key]
		b := advisory.TractionBenchmark{
			Metric:          m.name,
			YourValue:       v,
			IndustryAverage: avg,
			Comparison:      ComparisonNotProvided,
		}
		if v != nil {
			var points float64
			b.Comparison, points = compareMetric(*v, avg, m.lowerBetter)
			sum += points
			n++
		}
		res.Benchmarks = append(res.Benchmarks, b)
	}
	if n > 0 {
		res.GrowthHealthScore = round2(min(max((sum/float64(n)+20)/40*100, 0), 100))
	}
	return res
}

// compareMetric rates v against avg and returns the score contribution.
func compareMetric(v, avg float64, lowerBetter bool) (string, float64) {
	if lowerBetter {
		switch {
		case v < avg*0.8:
			return ComparisonMuchBetter, 20
		case v < avg:
			return ComparisonBetter, 10
		case v > avg*1.2:
			return ComparisonMuchWorse, -20
		case v > avg:
			return ComparisonWorse, -10
		}
		return ComparisonAverage, 5
	}
	switch {
	case v > avg*1.2:
		return ComparisonMuchBetter, 20
	case v > avg:
		return ComparisonBetter, 10
	case v < avg*0.8:
		return ComparisonMuchWorse, -20
	case v < avg:
		return ComparisonWorse, -10
	}
	return ComparisonAverage, 5
}

func (s *Service) planTraction(_ context.Context, req advisory.TractionRequest) runner.Plan[advisory.TractionResult] {
	baseline := s.TractionBaseline(req)
	table, _ := json.MarshalIndent(baseline.Benchmarks, "", "  ")

	p := newPrompt("You are an AI growth advisor reviewing startup traction metrics.").
		field("Startup Name", req.StartupName).
		field("Industry", req.YourIndustry).
		field("Growth Health Score", baseline.GrowthHealthScore).
		blank().
		line("Metrics and benchmarks:").
		line("%s", table).
		blank().
		line("Provide 3-5 actionable insights for improving traction based on these numbers.").
		line("If a metric is missing, suggest what insight it could provide.")

	return runner.Plan[advisory.TractionResult]{
		Prompt: p.shape(`{"ai_insights": ["insight", "..."]}`),
		Decode: func(v extract.Value) advisory.TractionResult {
			res := baseline
			switch {
			case v.IsList():
				res.AIInsights = v.Strings()
			case v.Field("ai_insights").Present():
				res.AIInsights = v.Field("ai_insights").Strings()
			case v.Field("insights").Present():
				res.AIInsights = v.Field("insights").Strings()
			default:
				res.AIInsights = firstList(v).Strings()
			}
			return res
		},
		Fallback: func(err error) advisory.TractionResult {
			res := baseline
			res.AIInsights = []string{"Could not generate traction insights due to AI error. " + serviceError(err)}
			res.Degraded = true
			return res
		},
	}
}

// firstList returns the first list-valued member of an object, in key
// order, or v itself when there is none.
func firstList(v extract.Value) extract.Value {
	m, ok := v.Raw().(map[string]any)
	if !ok {
		return v
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, isList := m[k].([]any); isList {
			return extract.Of(m[k])
		}
	}
	return v
}
