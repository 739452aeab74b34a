package advisory

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/db/memory"
	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/repository/reference"
	"github.com/kailas-cloud/navigator/internal/repository/resultcache"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

type stubCompleter struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func (s *stubCompleter) set(text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text, s.err = text, err
}

func (s *stubCompleter) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

func (s *stubCompleter) lastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

type stubLookup struct {
	mu      sync.Mutex
	web     []domain.SearchRecord
	news    map[string][]domain.SearchRecord
	queries []string
	gathers [][]string
}

func (l *stubLookup) Search(_ context.Context, query string, opts domain.SearchOptions) []domain.SearchRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queries = append(l.queries, query)
	if opts.Vertical == domain.VerticalNews {
		if recs, ok := l.news[query]; ok {
			return recs
		}
	}
	return []domain.SearchRecord{}
}

func (l *stubLookup) Gather(_ context.Context, queries []string, _ domain.SearchOptions) []domain.SearchRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gathers = append(l.gathers, queries)
	return l.web
}

type fixture struct {
	svc       *Service
	completer *stubCompleter
	lookup    *stubLookup
}

func newFixture(t *testing.T, reply string) *fixture {
	t.Helper()
	clock := memory.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	store := memory.NewStore(memory.WithClock(clock.Now))
	c := resultcache.New(store, "navigator:", zap.NewNop())
	comp := &stubCompleter{text: reply}
	look := &stubLookup{news: map[string][]domain.SearchRecord{}}
	r := runner.New(c, comp, runner.Config{}, zap.NewNop())
	return &fixture{
		svc:       New(r, look, reference.MustDefault(), zap.NewNop()),
		completer: comp,
		lookup:    look,
	}
}

func ptr[T any](v T) *T { return &v }
