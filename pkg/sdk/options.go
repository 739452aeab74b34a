package navigator

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "redis", "goredis" or "memory"
	addrs    []string
	password string

	completer Completer
	openai    *openAIConfig
	searcher  Searcher
	serpAPI   string

	keyPrefix string
	ttl       time.Duration
	searchTTL time.Duration
	coalesce  bool

	investorsPath  string
	riskRulesPath  string
	benchmarksPath string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

type openAIConfig struct {
	apiKey  string
	baseURL string
	model   string
}

// WithRedis caches results in Redis through rueidis.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithGoRedis caches results in Redis through go-redis.
func WithGoRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "goredis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithMemory caches results in process memory. This is the default.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
		c.addrs = nil
		c.password = ""
	})
}

// WithCompleter sets the generation backend.
func WithCompleter(comp Completer) Option {
	return optionFunc(func(c *clientConfig) {
		c.completer = comp
	})
}

// WithOpenAI uses an OpenAI-compatible chat completions endpoint as the
// generation backend. An empty baseURL selects the OpenAI API.
func WithOpenAI(apiKey, baseURL, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.openai = &openAIConfig{apiKey: apiKey, baseURL: baseURL, model: model}
	})
}

// WithSearcher sets the search backend used by the reputation and
// competitor features. Without one, those features run on the request alone.
func WithSearcher(s Searcher) Option {
	return optionFunc(func(c *clientConfig) {
		c.searcher = s
	})
}

// WithSerpAPI uses SerpAPI as the search backend.
func WithSerpAPI(apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.serpAPI = apiKey
	})
}

// WithKeyPrefix sets the cache key prefix. Default: "navigator:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithTTL sets how long feature results are cached. Default: 1h.
func WithTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.ttl = ttl
	})
}

// WithSearchTTL sets how long raw search results are cached. Default: 2h.
func WithSearchTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchTTL = ttl
	})
}

// WithCoalescing makes concurrent identical requests share one computation.
func WithCoalescing() Option {
	return optionFunc(func(c *clientConfig) {
		c.coalesce = true
	})
}

// WithReferenceFiles replaces the embedded investor, risk-rule and benchmark
// tables. Empty paths keep the embedded table.
func WithReferenceFiles(investors, riskRules, benchmarks string) Option {
	return optionFunc(func(c *clientConfig) {
		c.investorsPath = investors
		c.riskRulesPath = riskRules
		c.benchmarksPath = benchmarks
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
