// Package runner executes cached generation operations.
//
// A run fingerprints the request, returns a cached result when one exists,
// and otherwise builds a prompt, extracts a typed result from the generated
// reply (or a fallback) and stores it with first-writer-wins semantics.
// Degraded results are stored too, so a failing backend is not retried for
// the same input until the entry expires.
//
// Concurrent identical requests may each compute a result: the miss check
// and the write are not atomic. Config.Coalesce enables per-key
// singleflight to share one computation among concurrent callers.
//
// A run whose caller is canceled before the reply arrives is returned to
// that caller but never cached.
package runner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/fingerprint"
)

// DefaultTTL applies when neither the operation nor the config sets one.
const DefaultTTL = time.Hour

// Plan is what an operation needs to produce a result on a cache miss.
type Plan[Res any] struct {
	Prompt   string
	Decode   func(extract.Value) Res
	Fallback func(error) Res
}

// Operation binds a feature name to its prompt builder.
type Operation[Req, Res any] struct {
	Feature string
	TTL     time.Duration
	Plan    func(ctx context.Context, req Req) Plan[Res]
}

// Config tunes a Runner.
type Config struct {
	DefaultTTL time.Duration
	// FeatureTTLs override operation TTLs by feature name.
	FeatureTTLs map[string]time.Duration
	Coalesce    bool
}

// Runner holds the shared collaborators of every operation.
type Runner struct {
	cache     cache
	completer domain.Completer
	cfg       Config
	group     singleflight.Group
	tracer    trace.Tracer
	outcomes  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	logger    *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) { r.tracer = t }
}

// WithMetrics sets the outcome counter (labels "feature", "outcome") and
// the compute duration histogram (label "feature"). Either may be nil.
func WithMetrics(outcomes *prometheus.CounterVec, duration *prometheus.HistogramVec) Option {
	return func(r *Runner) {
		r.outcomes = outcomes
		r.duration = duration
	}
}

// New creates a Runner.
func New(c cache, completer domain.Completer, cfg Config, logger *zap.Logger, opts ...Option) *Runner {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	r := &Runner{
		cache:     c,
		completer: completer,
		cfg:       cfg,
		tracer:    otel.Tracer("github.com/kailas-cloud/navigator/internal/usecase/runner"),
		logger:    logger,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Runner) ttlFor(feature string, opTTL time.Duration) time.Duration {
	if ttl, ok := r.cfg.FeatureTTLs[feature]; ok && ttl > 0 {
		return ttl
	}
	if opTTL > 0 {
		return opTTL
	}
	return r.cfg.DefaultTTL
}

// Run returns the result for req, from cache when possible. It never fails:
// backend and parse errors surface as the operation's fallback result.
func Run[Req, Res any](ctx context.Context, r *Runner, op Operation[Req, Res], req Req) Res {
	key := r.cache.Key(fingerprint.Key(op.Feature, req))

	ctx, span := r.tracer.Start(ctx, "runner.Run",
		trace.WithAttributes(attribute.String("feature", op.Feature)))
	defer span.End()

	if res, ok := load[Res](ctx, r, op.Feature, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return res
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	if !r.cfg.Coalesce {
		res, _ := compute(ctx, r, op, req, key, span)
		return res
	}

	// The shared computation outlives the caller that started it.
	shared := context.WithoutCancel(ctx)
	v, _, _ := r.group.Do(key, func() (any, error) {
		_, data := compute(shared, r, op, req, key, span)
		return data, nil
	})
	// Each caller decodes its own copy of the shared result.
	if data, ok := v.([]byte); ok && data != nil {
		var res Res
		if err := json.Unmarshal(data, &res); err == nil {
			return res
		}
	}
	res, _ := compute(ctx, r, op, req, key, span)
	return res
}

func load[Res any](ctx context.Context, r *Runner, feature, key string) (Res, bool) {
	var res Res
	data, ok := r.cache.Get(ctx, feature, key)
	if !ok {
		return res, false
	}
	if err := json.Unmarshal(data, &res); err != nil {
		r.logger.Warn("Failed to decode cached result, recomputing",
			zap.String("feature", feature), zap.String("key", key), zap.Error(err))
		r.cache.Evict(context.WithoutCancel(ctx), key)
		var zero Res
		return zero, false
	}
	return res, true
}

func compute[Req, Res any](
	ctx context.Context,
	r *Runner,
	op Operation[Req, Res],
	req Req,
	key string,
	span trace.Span,
) (Res, []byte) {
	start := time.Now()

	plan := op.Plan(ctx, req)
	res, rep := extract.Run(ctx, r.completer, plan.Prompt, plan.Decode, plan.Fallback)

	if r.duration != nil {
		r.duration.WithLabelValues(op.Feature).Observe(time.Since(start).Seconds())
	}
	if r.outcomes != nil {
		r.outcomes.WithLabelValues(op.Feature, string(rep.Outcome)).Inc()
	}
	span.SetAttributes(attribute.String("outcome", string(rep.Outcome)))
	if rep.Degraded() {
		span.SetStatus(codes.Error, rep.Err.Error())
		r.logger.Warn("Serving degraded result",
			zap.String("feature", op.Feature),
			zap.String("outcome", string(rep.Outcome)),
			zap.Error(rep.Err))
	}

	// A result produced for a caller that went away says nothing about the backend.
	if ctx.Err() != nil {
		r.logger.Debug("Caller canceled, result not cached",
			zap.String("feature", op.Feature), zap.Error(ctx.Err()))
		return res, nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		r.logger.Error("Failed to encode result", zap.String("feature", op.Feature), zap.Error(err))
		return res, nil
	}

	wctx := context.WithoutCancel(ctx)
	if written := r.cache.Put(wctx, key, data, r.ttlFor(op.Feature, op.TTL)); !written {
		// Another caller stored first; converge on its result.
		if winner, ok := load[Res](wctx, r, op.Feature, key); ok {
			if wd, err := json.Marshal(winner); err == nil {
				return winner, wd
			}
		}
	}
	return res, data
}
