// Package reference loads the read-only lookup tables used by the advisory
// features: the investor roster, the risk-rule table and traction benchmarks.
//
// Defaults are embedded in the binary; each table can be replaced by a file.
package reference

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
)

//go:embed data/*.json
var embedded embed.FS

// Band is one threshold of a risk dimension. A band matches when the value
// is strictly below Below or strictly above Above; a band with neither set
// always matches.
type Band struct {
	Below          *float64 `json:"below,omitempty"`
	Above          *float64 `json:"above,omitempty"`
	Level          string   `json:"level"`
	Points         float64  `json:"points"`
	Mitigation     string   `json:"mitigation"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// Matches reports whether v falls into the band.
func (b Band) Matches(v float64) bool {
	switch {
	case b.Below != nil:
		return v < *b.Below
	case b.Above != nil:
		return v > *b.Above
	default:
		return true
	}
}

// RiskDimension scores one request field. Bands are checked in order.
type RiskDimension struct {
	Name  string `json:"name"`
	Field string `json:"field"`
	Bands []Band `json:"bands"`
}

// Match returns the first band matching v.
func (d RiskDimension) Match(v float64) (Band, bool) {
	for _, b := range d.Bands {
		if b.Matches(v) {
			return b, true
		}
	}
	return Band{}, false
}

// RiskRules is the risk-rule table.
type RiskRules struct {
	MaxScore   float64         `json:"max_score"`
	Dimensions []RiskDimension `json:"dimensions"`
}

// Benchmark holds industry averages keyed by metric field name.
type Benchmark map[string]float64

// Benchmarks maps industries to averages.
type Benchmarks struct {
	Default    string               `json:"default"`
	Industries map[string]Benchmark `json:"industries"`
}

// For returns the benchmark for industry, matched case-insensitively,
// or the default industry's benchmark.
func (b Benchmarks) For(industry string) (string, Benchmark) {
	for name, bm := range b.Industries {
		if strings.EqualFold(name, strings.TrimSpace(industry)) {
			return name, bm
		}
	}
	return b.Default, b.Industries[b.Default]
}

// Data bundles every table.
type Data struct {
	Investors  []advisory.InvestorProfile
	RiskRules  RiskRules
	Benchmarks Benchmarks
}

// Config holds optional override paths.
type Config struct {
	InvestorsPath  string
	RiskRulesPath  string
	BenchmarksPath string
}

// Load reads the embedded tables, replacing any with its override file.
func Load(cfg Config) (*Data, error) {
	d := &Data{}
	if err := loadTable(cfg.InvestorsPath, "data/investors.json", &d.Investors); err != nil {
		return nil, fmt.Errorf("load investors: %w", err)
	}
	if err := loadTable(cfg.RiskRulesPath, "data/risk_rules.json", &d.RiskRules); err != nil {
		return nil, fmt.Errorf("load risk rules: %w", err)
	}
	if err := loadTable(cfg.BenchmarksPath, "data/benchmarks.json", &d.Benchmarks); err != nil {
		return nil, fmt.Errorf("load benchmarks: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustDefault returns the embedded tables and panics if they are invalid.
func MustDefault() *Data {
	d, err := Load(Config{})
	if err != nil {
		panic(err)
	}
	return d
}

func loadTable(path, name string, out any) error {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path) //nolint:gosec // path comes from operator config
	} else {
		data, err = embedded.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode table: %w", err)
	}
	return nil
}

func (d *Data) validate() error {
	for i, inv := range d.Investors {
		if inv.Name == "" {
			return fmt.Errorf("investor %d: name is required", i)
		}
		if inv.MinInvestmentUSD > inv.MaxInvestmentUSD {
			return fmt.Errorf("investor %q: min_investment_usd exceeds max_investment_usd", inv.Name)
		}
	}
	if d.RiskRules.MaxScore <= 0 {
		return fmt.Errorf("risk rules: max_score must be positive")
	}
	for _, dim := range d.RiskRules.Dimensions {
		if len(dim.Bands) == 0 {
			return fmt.Errorf("risk rules: dimension %q has no bands", dim.Name)
		}
	}
	if _, ok := d.Benchmarks.Industries[d.Benchmarks.Default]; !ok {
		return fmt.Errorf("benchmarks: default industry %q not defined", d.Benchmarks.Default)
	}
	return nil
}
