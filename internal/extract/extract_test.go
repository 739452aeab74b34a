package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/navigator/internal/domain"
)

type stubCompleter struct {
	text  string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

type scored struct {
	Score    float64
	Items    []string
	Degraded bool
}

func decodeScored(v Value) scored {
	return scored{
		Score: Clamp(v.Field("score").Float(50), 0, 100),
		Items: v.Field("items").Strings(),
	}
}

func fallbackScored(err error) scored {
	return scored{Score: 50, Items: []string{"error: " + err.Error()}, Degraded: true}
}

func TestRun_Success(t *testing.T) {
	c := &stubCompleter{text: "```json\n{\"score\": 20, \"items\": \"one\"}\n```"}

	res, rep := Run(context.Background(), c, "prompt", decodeScored, fallbackScored)
	if rep.Outcome != OutcomeSuccess || rep.Degraded() {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if res.Score != 20 {
		t.Errorf("Score = %v, want 20", res.Score)
	}
	if len(res.Items) != 1 || res.Items[0] != "one" {
		t.Errorf("Items = %v", res.Items)
	}
}

func TestRun_PartialPayloadGetsDefaults(t *testing.T) {
	c := &stubCompleter{text: `{"unrelated": true}`}

	res, rep := Run(context.Background(), c, "prompt", decodeScored, fallbackScored)
	if rep.Outcome != OutcomeSuccess {
		t.Fatalf("unexpected outcome: %s", rep.Outcome)
	}
	if res.Score != 50 || res.Items == nil || len(res.Items) != 0 {
		t.Errorf("expected defaults, got %+v", res)
	}
}

func TestRun_GenerationFailure(t *testing.T) {
	c := &stubCompleter{err: errors.New("connection refused")}

	res, rep := Run(context.Background(), c, "prompt", decodeScored, fallbackScored)
	if rep.Outcome != OutcomeGenerationFailed {
		t.Fatalf("unexpected outcome: %s", rep.Outcome)
	}
	if !errors.Is(rep.Err, domain.ErrGenerationFailure) {
		t.Errorf("expected ErrGenerationFailure, got %v", rep.Err)
	}
	if !res.Degraded || len(res.Items) != 1 {
		t.Errorf("expected fallback result, got %+v", res)
	}
}

func TestRun_MalformedOutput(t *testing.T) {
	c := &stubCompleter{text: "Sorry, I can't produce JSON today."}

	res, rep := Run(context.Background(), c, "prompt", decodeScored, fallbackScored)
	if rep.Outcome != OutcomeMalformed {
		t.Fatalf("unexpected outcome: %s", rep.Outcome)
	}
	if !errors.Is(rep.Err, domain.ErrMalformedOutput) {
		t.Errorf("expected ErrMalformedOutput, got %v", rep.Err)
	}
	if !res.Degraded {
		t.Error("expected fallback result")
	}
}
