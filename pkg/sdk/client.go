package navigator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/db"
	dbGoRedis "github.com/kailas-cloud/navigator/internal/db/goredis"
	dbMemory "github.com/kailas-cloud/navigator/internal/db/memory"
	dbRedis "github.com/kailas-cloud/navigator/internal/db/redis"
	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/repository/reference"
	"github.com/kailas-cloud/navigator/internal/repository/resultcache"
	openaiGen "github.com/kailas-cloud/navigator/internal/transport/openai"
	"github.com/kailas-cloud/navigator/internal/transport/serpapi"
	advisoryuc "github.com/kailas-cloud/navigator/internal/usecase/advisory"
	"github.com/kailas-cloud/navigator/internal/usecase/enrichment"
	healthuc "github.com/kailas-cloud/navigator/internal/usecase/health"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "navigator:"
)

// advisor is the internal interface for the feature service, for substitution in tests.
type advisor interface {
	AnalyzeRisk(ctx context.Context, req RiskRequest) RiskResult
	ScanReputation(ctx context.Context, req ReputationRequest) ReputationResult
	MatchInvestors(ctx context.Context, req InvestorMatchRequest) InvestorMatchResult
	PitchFeedback(ctx context.Context, req PitchFeedbackRequest) PitchFeedbackResult
	CompetitorRadar(ctx context.Context, req CompetitorRadarRequest) CompetitorRadarResult
	EstimateTraction(ctx context.Context, req TractionRequest) TractionResult
	BuildBuzz(ctx context.Context, req BuzzRequest) BuzzResult
	LegalAssistance(ctx context.Context, req LegalRequest) LegalResult
	ExploreExitStrategies(ctx context.Context, req ExitRequest) ExitResult
	NavigateTalent(ctx context.Context, req TalentRequest) TalentResult
}

// Client is the navigator SDK entry point.
type Client struct {
	store     db.Store
	svc       advisor
	healthSvc healthUseCase
	obs       *observer
}

// New creates a navigator Client. A generation backend is required
// (WithCompleter or WithOpenAI); the cache defaults to process memory.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:    "memory",
		keyPrefix: defaultKeyPrefix,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	completer, err := createCompleter(cfg)
	if err != nil {
		return nil, err
	}

	ref, err := reference.Load(reference.Config{
		InvestorsPath:  cfg.investorsPath,
		RiskRulesPath:  cfg.riskRulesPath,
		BenchmarksPath: cfg.benchmarksPath,
	})
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("navigator: database not ready: %w", err)
	}

	return wireClient(store, completer, ref, cfg, obs), nil
}

func createCompleter(cfg *clientConfig) (domain.Completer, error) {
	switch {
	case cfg.completer != nil:
		return cfg.completer, nil
	case cfg.openai != nil:
		return openaiGen.NewCompleter(&openaiGen.Config{
			APIKey:   cfg.openai.apiKey,
			BaseURL:  cfg.openai.baseURL,
			Model:    cfg.openai.model,
			JSONMode: true,
			Provider: "openai",
			Logger:   zap.NewNop(),
		}), nil
	default:
		return nil, errors.New("navigator: generation backend required (use WithCompleter or WithOpenAI)")
	}
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("navigator: create redis store: %w", err)
		}
		return s, nil
	case "goredis":
		if len(cfg.addrs) == 0 {
			return nil, errors.New("navigator: database address required")
		}
		s, err := dbGoRedis.NewStore(dbGoRedis.Config{
			Addr:     cfg.addrs[0],
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("navigator: create go-redis store: %w", err)
		}
		return s, nil
	case "memory":
		return dbMemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("navigator: unknown driver %q", cfg.driver)
	}
}

func createSearcher(cfg *clientConfig) domain.Searcher {
	switch {
	case cfg.searcher != nil:
		return cfg.searcher
	case cfg.serpAPI != "":
		return serpapi.NewSearcher(&serpapi.Config{
			APIKey: cfg.serpAPI,
			Logger: zap.NewNop(),
		})
	default:
		return nil
	}
}

func wireClient(
	store db.Store, completer domain.Completer, ref *reference.Data, cfg *clientConfig, obs *observer,
) *Client {
	logger := zap.NewNop()

	cache := resultcache.New(store, cfg.keyPrefix, logger)
	run := runner.New(cache, completer, runner.Config{
		DefaultTTL: cfg.ttl,
		Coalesce:   cfg.coalesce,
	}, logger)
	lookup := enrichment.New(createSearcher(cfg), cache, enrichment.Config{TTL: cfg.searchTTL}, logger)

	// Pass nil interface (not typed nil) when the completer has no health check.
	var generation healthuc.GenerationChecker
	if hc, ok := completer.(domain.HealthChecker); ok {
		generation = hc
	}

	return &Client{
		store:     store,
		svc:       advisoryuc.New(run, lookup, ref, logger),
		healthSvc: healthuc.New(store, generation),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks cache store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, false, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
