package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/config"
	"github.com/kailas-cloud/navigator/internal/db"
	dbGoRedis "github.com/kailas-cloud/navigator/internal/db/goredis"
	dbMemory "github.com/kailas-cloud/navigator/internal/db/memory"
	dbRedis "github.com/kailas-cloud/navigator/internal/db/redis"
	"github.com/kailas-cloud/navigator/internal/domain"
	logpkg "github.com/kailas-cloud/navigator/internal/logger"
	"github.com/kailas-cloud/navigator/internal/metrics"
	"github.com/kailas-cloud/navigator/internal/repository/reference"
	"github.com/kailas-cloud/navigator/internal/repository/resultcache"
	chiTransport "github.com/kailas-cloud/navigator/internal/transport/chi"
	openaiGen "github.com/kailas-cloud/navigator/internal/transport/openai"
	"github.com/kailas-cloud/navigator/internal/transport/serpapi"
	advisoryuc "github.com/kailas-cloud/navigator/internal/usecase/advisory"
	"github.com/kailas-cloud/navigator/internal/usecase/enrichment"
	healthuc "github.com/kailas-cloud/navigator/internal/usecase/health"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
	"github.com/kailas-cloud/navigator/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting navigator API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("generation_model", cfg.Generation.Model),
		zap.Bool("search_enabled", cfg.Search.APIKey != ""),
	)

	ctx := context.Background()

	shutdownTracing, err := setupTracing(cfg.Tracing)
	if err != nil {
		logger.Fatal("Failed to set up tracing", zap.Error(err))
	}

	store, err := newStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// The cache is best effort: an unreachable store degrades to uncached operation.
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Warn("Database not ready, serving uncached", zap.Error(err))
	} else {
		logger.Info("Connected to database")
	}

	// Register metrics explicitly (no init())
	metrics.RegisterGenerationMetrics()
	metrics.RegisterCacheMetrics()

	ref, err := reference.Load(reference.Config{
		InvestorsPath:  cfg.Reference.InvestorsPath,
		RiskRulesPath:  cfg.Reference.RiskRulesPath,
		BenchmarksPath: cfg.Reference.BenchmarksPath,
	})
	if err != nil {
		logger.Fatal("Failed to load reference data", zap.Error(err))
	}

	cache := resultcache.New(store, cfg.Cache.KeyPrefix, logger,
		resultcache.WithMetrics(
			metrics.ResultCacheTotal, metrics.ResultCacheErrorsTotal, metrics.ResultCacheAvailable,
		),
	)

	completer := openaiGen.NewCompleter(&openaiGen.Config{
		APIKey:       cfg.Generation.APIKey,
		BaseURL:      cfg.Generation.BaseURL,
		Model:        cfg.Generation.Model,
		SystemPrompt: cfg.Generation.SystemPrompt,
		Temperature:  cfg.Generation.Temperature,
		MaxTokens:    cfg.Generation.MaxTokens,
		JSONMode:     cfg.Generation.JSONMode,
		Provider:     cfg.Generation.Provider,
		Logger:       logger,
	})

	run := runner.New(cache, completer, runner.Config{
		DefaultTTL:  cfg.Cache.FeatureTTL(),
		FeatureTTLs: cfg.Cache.Overrides(),
		Coalesce:    cfg.Cache.CoalesceInflight,
	}, logger, runner.WithMetrics(metrics.FeatureOutcomesTotal, metrics.FeatureComputeDuration))

	lookup := enrichment.New(newSearcher(cfg.Search, logger), cache, enrichment.Config{
		TTL: cfg.Cache.SearchTTL(),
		Defaults: domain.SearchOptions{
			Country:  cfg.Search.Country,
			Language: cfg.Search.Language,
			Num:      cfg.Search.Num,
		},
	}, logger)

	advisorySvc := advisoryuc.New(run, lookup, ref, logger)
	healthSvc := healthuc.New(store, completer)

	server, err := chiTransport.NewServer(advisorySvc, healthSvc, logger)
	if err != nil {
		logger.Fatal("Failed to create HTTP server", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Error flushing traces", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore creates the cache store for the configured driver.
func newStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		return dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	case config.DriverGoRedis:
		return dbGoRedis.NewStore(dbGoRedis.Config{
			Addr:     cfg.Addrs[0],
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	case config.DriverMemory:
		return dbMemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// newSearcher returns nil when no search key is configured; enrichment then
// answers every query with an empty list.
func newSearcher(cfg config.SearchConfig, logger *zap.Logger) domain.Searcher {
	if cfg.APIKey == "" {
		return nil
	}
	return serpapi.NewSearcher(&serpapi.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Engine:  cfg.Engine,
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		Logger:  logger,
	})
}
