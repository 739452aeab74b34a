package extract

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/navigator/internal/domain"
)

func TestParse_Object(t *testing.T) {
	v, err := Parse("```json\n{\"score\": 20, \"items\": [\"a\"]}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Field("score").Float(0); got != 20 {
		t.Errorf("score = %v, want 20", got)
	}
}

func TestParse_EmbeddedInProse(t *testing.T) {
	v, err := Parse(`Sure! {"name": "x"} Let me know.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Field("name").String("") != "x" {
		t.Errorf("unexpected value: %v", v.Raw())
	}
}

func TestParse_ArrayEmbeddedInProse(t *testing.T) {
	v, err := Parse(`Insights: ["grow", "retain"] done`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Strings(); len(got) != 2 {
		t.Errorf("expected 2 strings, got %v", got)
	}
}

func TestParse_FenceInsideStringValue(t *testing.T) {
	in := "{\"tip\": \"Wrap code in ```go blocks``` when sharing\", \"score\": 7}"

	v, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Field("score").Int(0); got != 7 {
		t.Errorf("score = %d, want 7", got)
	}
	if got := v.Field("tip").String(""); got != "Wrap code in ```go blocks``` when sharing" {
		t.Errorf("tip = %q", got)
	}
}

func TestParse_ProseAroundObjectWithFenceInString(t *testing.T) {
	in := "Here it is:\n{\"note\": \"use ``` for code\"}\nThanks"

	v, err := Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Field("note").String(""); got != "use ``` for code" {
		t.Errorf("note = %q", got)
	}
}

func TestParse_Failures(t *testing.T) {
	for name, in := range map[string]string{
		"empty":     "   ",
		"prose":     "I cannot help with that.",
		"truncated": `{"name": "x", "items": [`,
		"null":      "null",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, domain.ErrMalformedOutput) {
				t.Errorf("expected ErrMalformedOutput, got %v", err)
			}
		})
	}
}
