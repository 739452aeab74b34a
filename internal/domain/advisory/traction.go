package advisory

import "strings"

// TractionRequest carries optional growth metrics.
type TractionRequest struct {
	StartupName             string   `json:"startup_name"`
	YourIndustry            string   `json:"your_industry"`
	MonthlyActiveUsers      *float64 `json:"monthly_active_users,omitempty"`
	MonthlyRecurringRevenue *float64 `json:"monthly_recurring_revenue_usd,omitempty"`
	CustomerAcquisitionCost *float64 `json:"customer_acquisition_cost_usd,omitempty"`
	CustomerLifetimeValue   *float64 `json:"customer_lifetime_value_usd,omitempty"`
	ChurnRatePercent        *float64 `json:"churn_rate_percent,omitempty"`
	ConversionRatePercent   *float64 `json:"conversion_rate_percent,omitempty"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r TractionRequest) Normalize() TractionRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.YourIndustry = strings.TrimSpace(r.YourIndustry)
	return r
}

// Validate checks required fields and that metrics are not negative.
func (r TractionRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("your_industry", r.YourIndustry); err != nil {
		return err
	}
	for name, v := range map[string]*float64{
		"monthly_active_users":          r.MonthlyActiveUsers,
		"monthly_recurring_revenue_usd": r.MonthlyRecurringRevenue,
		"customer_acquisition_cost_usd": r.CustomerAcquisitionCost,
		"customer_lifetime_value_usd":   r.CustomerLifetimeValue,
		"churn_rate_percent":            r.ChurnRatePercent,
		"conversion_rate_percent":       r.ConversionRatePercent,
	} {
		if v != nil && *v < 0 {
			return invalid("%s must not be negative", name)
		}
	}
	return nil
}

// TractionBenchmark compares one metric against the industry average.
type TractionBenchmark struct {
	Metric          string   `json:"metric"`
	YourValue       *float64 `json:"your_value"`
	IndustryAverage float64  `json:"industry_average"`
	Comparison      string   `json:"comparison"`
}

// TractionResult holds benchmarks, a growth health score and insights.
type TractionResult struct {
	StartupName       string              `json:"startup_name"`
	GrowthHealthScore float64             `json:"growth_health_score"`
	Benchmarks        []TractionBenchmark `json:"benchmarks"`
	AIInsights        []string            `json:"ai_insights"`
	Degraded          bool                `json:"degraded"`
}
