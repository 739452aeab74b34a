// Package serpapi is a web and news search backend over the SerpAPI JSON API.
package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/metrics"
)

// DefaultBaseURL is the SerpAPI search endpoint.
const DefaultBaseURL = "https://serpapi.com/search.json"

// noResults is the message SerpAPI returns, with 200, for an empty result page.
const noResults = "hasn't returned any results"

// Config holds the search backend settings.
type Config struct {
	APIKey  string
	BaseURL string
	Engine  string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Searcher implements domain.Searcher.
type Searcher struct {
	apiKey  string
	baseURL string
	engine  string
	client  *http.Client
	logger  *zap.Logger
}

// NewSearcher creates a SerpAPI search backend.
func NewSearcher(cfg *Config) *Searcher {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	engine := cfg.Engine
	if engine == "" {
		engine = "google"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Searcher{
		apiKey:  cfg.APIKey,
		baseURL: base,
		engine:  engine,
		client:  &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

type response struct {
	Error          string                `json:"error"`
	OrganicResults []domain.SearchRecord `json:"organic_results"`
	NewsResults    []domain.SearchRecord `json:"news_results"`
}

// Search runs one query. A single attempt is made; errors wrap domain.ErrSearchFailure.
func (s *Searcher) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchRecord, error) {
	vertical := opts.Vertical
	if vertical == "" {
		vertical = domain.VerticalWeb
	}

	start := time.Now()
	recs, err := s.search(ctx, query, vertical, opts)
	metrics.SearchRequestDuration.WithLabelValues(string(vertical)).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(string(vertical), "error").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchFailure, err)
	}
	metrics.SearchRequestsTotal.WithLabelValues(string(vertical), "success").Inc()
	return recs, nil
}

func (s *Searcher) search(ctx context.Context, query string, vertical domain.Vertical, opts domain.SearchOptions) ([]domain.SearchRecord, error) {
	if s.apiKey == "" {
		return nil, errors.New("search api key is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.buildURL(query, vertical, opts), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if parsed.Error != "" {
		if strings.Contains(parsed.Error, noResults) {
			return []domain.SearchRecord{}, nil
		}
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, parsed.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	recs := parsed.OrganicResults
	if vertical == domain.VerticalNews {
		recs = parsed.NewsResults
	}
	if recs == nil {
		recs = []domain.SearchRecord{}
	}

	s.logger.Debug("Search completed",
		zap.String("vertical", string(vertical)),
		zap.Int("results", len(recs)),
	)
	return recs, nil
}

func (s *Searcher) buildURL(query string, vertical domain.Vertical, opts domain.SearchOptions) string {
	params := url.Values{}
	params.Set("engine", s.engine)
	params.Set("q", query)
	params.Set("api_key", s.apiKey)
	if vertical == domain.VerticalNews {
		params.Set("tbm", "nws")
	}
	if opts.Country != "" {
		params.Set("gl", opts.Country)
	}
	if opts.Language != "" {
		params.Set("hl", opts.Language)
	}
	if opts.Num > 0 {
		params.Set("num", strconv.Itoa(opts.Num))
	}
	return s.baseURL + "?" + params.Encode()
}
