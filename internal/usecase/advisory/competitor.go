package advisory

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

const (
	maxCandidates      = 10
	maxTracked         = 5
	newsPerCompetitor  = 5
	minCandidateLength = 4

	analysisFailed    = "AI analysis failed"
	trendsUnavailable = "Could not generate market trends due to AI error."
)

var (
	domainPattern = regexp.MustCompile(`https?://(?:www\.)?([a-zA-Z0-9-]+)\.(?:com|io|co|tech)`)
	listicleWords = []string{"best", "top", "list", "vs", "review", "news"}
	guideWords    = []string{"compare", "guide"}
)

// Candidate is a possible competitor spotted in search results.
type Candidate struct {
	Name string
	Link string
}

// CompetitorRadar discovers and summarises likely competitors.
func (s *Service) CompetitorRadar(ctx context.Context, req advisory.CompetitorRadarRequest) advisory.CompetitorRadarResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.CompetitorRadarRequest, advisory.CompetitorRadarResult]{
		Feature: advisory.FeatureCompetitor,
		Plan:    s.planCompetitor,
	}, req.Normalize())
}

func competitorQueries(req advisory.CompetitorRadarRequest) []string {
	return []string{
		fmt.Sprintf("'%s' companies for '%s'", req.YourIndustry, req.YourProductServiceDescription),
		fmt.Sprintf("competitors of '%s' %s", req.StartupName, req.YourIndustry),
		fmt.Sprintf("top '%s' startups with '%s'", req.YourIndustry, req.YourProductServiceDescription),
	}
}

// ExtractCandidates picks company names out of web results, at most ten,
// skipping the startup itself and listicle-style pages.
func ExtractCandidates(startup string, recs []domain.SearchRecord) []Candidate {
	self := strings.ToLower(startup)
	seen := make(map[string]struct{})
	out := []Candidate{}

	add := func(name, link string) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Candidate{Name: name, Link: link})
	}

	for _, r := range recs {
		if len(out) == maxCandidates {
			break
		}
		name := titleName(r.Title)
		if name == "" {
			if m := domainPattern.FindStringSubmatch(r.Link); m != nil {
				name = cases.Title(language.English).String(strings.ReplaceAll(m[1], "-", " "))
				if len(name) >= minCandidateLength && !strings.Contains(strings.ToLower(name), "company") {
					add(name, r.Link)
				}
			}
			continue
		}
		if len(name) < minCandidateLength || strings.Contains(strings.ToLower(name), self) {
			continue
		}
		if containsWord(r.Title, listicleWords) || containsWord(r.Snippet, guideWords) {
			continue
		}
		add(name, r.Link)
	}
	return out
}

func titleName(title string) string {
	for _, sep := range []string{" - ", " | "} {
		if head, _, ok := strings.Cut(title, sep); ok {
			return strings.TrimSpace(head)
		}
	}
	return ""
}

func containsWord(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func (s *Service) gatherNews(ctx context.Context, req advisory.CompetitorRadarRequest, candidates []Candidate) [][]domain.SearchRecord {
	news := make([][]domain.SearchRecord, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		g.Go(func() error {
			q := fmt.Sprintf("%s %s %s news funding hiring", c.Name, req.YourIndustry, req.YourProductServiceDescription)
			news[i] = s.search.Search(gctx, q, domain.SearchOptions{Vertical: domain.VerticalNews})
			return nil
		})
	}
	_ = g.Wait()
	return news
}

func (s *Service) planCompetitor(ctx context.Context, req advisory.CompetitorRadarRequest) runner.Plan[advisory.CompetitorRadarResult] {
	web := s.search.Gather(ctx, competitorQueries(req), domain.SearchOptions{Vertical: domain.VerticalWeb})
	candidates := ExtractCandidates(req.StartupName, web)
	if len(candidates) > maxTracked {
		candidates = candidates[:maxTracked]
	}
	news := s.gatherNews(ctx, req, candidates)

	s.logger.Debug("Competitor candidates extracted",
		zap.Int("web_results", len(web)),
		zap.Int("candidates", len(candidates)),
	)

	p := newPrompt("You are an AI market analyst tracking competitors of a startup.").
		field("Startup Name", req.StartupName).
		field("Industry", req.YourIndustry).
		field("Product/Service", req.YourProductServiceDescription).
		blank()
	if len(candidates) == 0 {
		p.line("No candidate competitors were found in search. Name the most likely competitors you know of.")
	}
	for i, c := range candidates {
		p.line("Candidate %d: %s (%s)", i+1, c.Name, orNA(c.Link))
		p.records("Recent news", news[i], newsPerCompetitor)
		p.blank()
	}
	p.line("For each real competitor among the candidates, summarise product, value proposition, target market,").
		line("funding rounds, press mentions and hiring surge (High, Medium, Low or No indication).").
		line("Exclude generic terms, articles and lists. Then synthesise 3-5 general market trends.")

	links := make(map[string]string, len(candidates))
	for _, c := range candidates {
		links[strings.ToLower(c.Name)] = c.Link
	}

	return runner.Plan[advisory.CompetitorRadarResult]{
		Prompt: p.shape(`{
  "tracked_competitors": [{
    "name": "...",
    "website": "https://...",
    "product_description": "...",
    "value_proposition": "...",
    "target_market": "...",
    "funding_rounds": ["..."],
    "press_mentions_summary": ["..."],
    "hiring_surge_indication": "High|Medium|Low|No indication",
    "overall_summary": "..."
  }],
  "general_market_trends": ["..."]
}`),
		Decode: func(v extract.Value) advisory.CompetitorRadarResult {
			res := advisory.CompetitorRadarResult{
				StartupName:         req.StartupName,
				TrackedCompetitors:  []advisory.CompetitorInfo{},
				GeneralMarketTrends: v.Field("general_market_trends").Strings(),
			}
			for _, it := range v.Field("tracked_competitors").Items() {
				if len(res.TrackedCompetitors) == maxTracked {
					break
				}
				name := it.Label("name", "")
				if name == "" {
					continue
				}
				website := it.Field("website").String("")
				if website == "" {
					website = links[strings.ToLower(name)]
				}
				res.TrackedCompetitors = append(res.TrackedCompetitors, advisory.CompetitorInfo{
					Name:                  name,
					Website:               website,
					ProductDescription:    it.Field("product_description").String(""),
					ValueProposition:      it.Field("value_proposition").String(""),
					TargetMarket:          it.Field("target_market").String(""),
					FundingRounds:         it.Field("funding_rounds").Strings(),
					PressMentionsSummary:  it.Field("press_mentions_summary").Strings(),
					HiringSurgeIndication: advisory.NormalizeHiring(it.Field("hiring_surge_indication").String("")),
					OverallSummary:        it.Field("overall_summary").String("Could not generate detailed summary."),
				})
			}
			return res
		},
		Fallback: func(err error) advisory.CompetitorRadarResult {
			res := advisory.CompetitorRadarResult{
				StartupName:         req.StartupName,
				TrackedCompetitors:  make([]advisory.CompetitorInfo, 0, len(candidates)),
				GeneralMarketTrends: []string{trendsUnavailable},
				Degraded:            true,
			}
			for _, c := range candidates {
				res.TrackedCompetitors = append(res.TrackedCompetitors, advisory.CompetitorInfo{
					Name:                  c.Name,
					Website:               c.Link,
					FundingRounds:         []string{analysisFailed},
					PressMentionsSummary:  []string{analysisFailed},
					HiringSurgeIndication: advisory.HiringNoIndication,
					OverallSummary:        "Could not generate AI summary. " + serviceError(err),
				})
			}
			return res
		},
	}
}
