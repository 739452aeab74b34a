package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/db/memory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/fingerprint"
	"github.com/kailas-cloud/navigator/internal/repository/resultcache"
)

type stubCompleter struct {
	mu    sync.Mutex
	text  string
	err   error
	calls atomic.Int32
	gate  chan struct{}
}

func (s *stubCompleter) Complete(ctx context.Context, _ string) (string, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.err
}

func (s *stubCompleter) set(text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text, s.err = text, err
}

type testReq struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type testRes struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Notes    []string `json:"notes"`
	Degraded bool     `json:"degraded"`
}

func testOp(ttl time.Duration) Operation[testReq, testRes] {
	return Operation[testReq, testRes]{
		Feature: "test_feature",
		TTL:     ttl,
		Plan: func(_ context.Context, req testReq) Plan[testRes] {
			return Plan[testRes]{
				Prompt: "score " + req.Name,
				Decode: func(v extract.Value) testRes {
					return testRes{
						Name:  req.Name,
						Score: v.Field("score").Float(50),
						Notes: v.Field("notes").Strings(),
					}
				},
				Fallback: func(err error) testRes {
					return testRes{Name: req.Name, Score: 50, Notes: []string{err.Error()}, Degraded: true}
				},
			}
		},
	}
}

type fixture struct {
	runner    *Runner
	completer *stubCompleter
	store     *memory.Store
	clock     *memory.FakeClock
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	clock := memory.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	store := memory.NewStore(memory.WithClock(clock.Now))
	c := resultcache.New(store, "test:", zap.NewNop())
	comp := &stubCompleter{text: `{"score": 20, "notes": ["fine"]}`}
	return &fixture{
		runner:    New(c, comp, cfg, zap.NewNop()),
		completer: comp,
		store:     store,
		clock:     clock,
	}
}

func mustDigest(t *testing.T, v any) string {
	t.Helper()
	d, err := fingerprint.Digest(v)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
