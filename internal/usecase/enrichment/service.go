// Package enrichment fetches search results used as grounding context.
//
// Results are cached per query and vertical independently of feature
// results, since several features can issue the same query. Backend
// failures yield an empty list and are not cached.
package enrichment

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/fingerprint"
)

const (
	// DefaultTTL is how long raw search results are reused.
	DefaultTTL = 2 * time.Hour

	cacheLabel     = "search"
	maxConcurrency = 4
)

// Config tunes a Lookup.
type Config struct {
	TTL      time.Duration
	Defaults domain.SearchOptions
}

// Lookup is a cached search client.
type Lookup struct {
	searcher domain.Searcher
	cache    cache
	cfg      Config
	tracer   trace.Tracer
	logger   *zap.Logger
}

// New creates a Lookup. A nil searcher disables search: every query
// returns an empty list.
func New(s domain.Searcher, c cache, cfg Config, logger *zap.Logger) *Lookup {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Defaults.Vertical == "" {
		cfg.Defaults.Vertical = domain.VerticalWeb
	}
	return &Lookup{
		searcher: s,
		cache:    c,
		cfg:      cfg,
		tracer:   otel.Tracer("github.com/kailas-cloud/navigator/internal/usecase/enrichment"),
		logger:   logger,
	}
}

func (l *Lookup) withDefaults(opts domain.SearchOptions) domain.SearchOptions {
	if opts.Vertical == "" {
		opts.Vertical = l.cfg.Defaults.Vertical
	}
	if opts.Country == "" {
		opts.Country = l.cfg.Defaults.Country
	}
	if opts.Language == "" {
		opts.Language = l.cfg.Defaults.Language
	}
	if opts.Num <= 0 {
		opts.Num = l.cfg.Defaults.Num
	}
	return opts
}

// Search returns the records for query, from cache when possible.
// The returned slice is never nil.
func (l *Lookup) Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SearchRecord{}
	}
	opts = l.withDefaults(opts)

	ctx, span := l.tracer.Start(ctx, "enrichment.Search",
		trace.WithAttributes(attribute.String("vertical", string(opts.Vertical))))
	defer span.End()

	key := l.cache.Key(cacheLabel + ":" + fingerprint.Text(query, string(opts.Vertical)))
	if data, ok := l.cache.Get(ctx, cacheLabel, key); ok {
		var cached []domain.SearchRecord
		if err := json.Unmarshal(data, &cached); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached
		}
		l.logger.Warn("Failed to decode cached search results", zap.String("key", key))
		l.cache.Evict(ctx, key)
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	if l.searcher == nil {
		return []domain.SearchRecord{}
	}

	records, err := l.searcher.Search(ctx, query, opts)
	if err != nil {
		l.logger.Warn("Search failed, continuing without results",
			zap.String("query", query), zap.String("vertical", string(opts.Vertical)), zap.Error(err))
		return []domain.SearchRecord{}
	}
	if len(records) == 0 {
		return []domain.SearchRecord{}
	}

	if data, err := json.Marshal(records); err == nil {
		l.cache.Put(ctx, key, data, l.cfg.TTL)
	}
	return records
}

// Gather runs queries concurrently and merges their results in query order.
func (l *Lookup) Gather(ctx context.Context, queries []string, opts domain.SearchOptions) []domain.SearchRecord {
	results := make([][]domain.SearchRecord, len(queries))

	var g errgroup.Group
	g.SetLimit(maxConcurrency)
	for i, q := range queries {
		g.Go(func() error {
			results[i] = l.Search(ctx, q, opts)
			return nil
		})
	}
	_ = g.Wait()

	return Merge(results...)
}

// Merge concatenates record lists, keeping the first record seen for each
// link, or for each case-folded title when the link is empty.
func Merge(lists ...[]domain.SearchRecord) []domain.SearchRecord {
	seen := make(map[string]struct{})
	out := make([]domain.SearchRecord, 0)
	for _, list := range lists {
		for _, rec := range list {
			k := dedupKey(rec)
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, rec)
		}
	}
	return out
}

func dedupKey(r domain.SearchRecord) string {
	if link := strings.TrimSpace(r.Link); link != "" {
		return "link:" + link
	}
	if title := strings.ToLower(strings.TrimSpace(r.Title)); title != "" {
		return "title:" + title
	}
	return ""
}
