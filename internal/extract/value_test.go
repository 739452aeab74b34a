package extract

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestValue_MissingFieldsUseDefaults(t *testing.T) {
	v := mustParse(t, `{}`)
	if got := v.Field("name").String("fallback"); got != "fallback" {
		t.Errorf("String default = %q", got)
	}
	if got := v.Field("score").Float(50); got != 50 {
		t.Errorf("Float default = %v", got)
	}
	if got := v.Field("count").Int(3); got != 3 {
		t.Errorf("Int default = %v", got)
	}
	if got := v.Field("flag").Bool(true); !got {
		t.Error("Bool default lost")
	}
	if got := v.Field("list").Strings(); got == nil || len(got) != 0 {
		t.Errorf("Strings on missing = %#v, want empty non-nil", got)
	}
	if got := v.Field("list").Items(); got == nil || len(got) != 0 {
		t.Errorf("Items on missing = %#v, want empty non-nil", got)
	}
}

func TestValue_ScalarWhereListExpected(t *testing.T) {
	v := mustParse(t, `{"tips": "ship weekly"}`)
	if got := v.Field("tips").Strings(); !reflect.DeepEqual(got, []string{"ship weekly"}) {
		t.Errorf("Strings = %v", got)
	}
}

func TestValue_ObjectWhereListExpected(t *testing.T) {
	v := mustParse(t, `{"roles": {"role_name": "CTO"}}`)
	items := v.Field("roles").Items()
	if len(items) != 1 {
		t.Fatalf("expected single-element list, got %d", len(items))
	}
	if items[0].Field("role_name").String("") != "CTO" {
		t.Errorf("unexpected item: %v", items[0].Raw())
	}
}

func TestValue_ListOfObjectsAsStrings(t *testing.T) {
	v := mustParse(t, `{"q": [{"question": "Why us?"}, "What next?", "", null]}`)
	want := []string{"Why us?", "What next?"}
	if got := v.Field("q").Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Strings = %v, want %v", got, want)
	}
}

func TestValue_NumericCoercions(t *testing.T) {
	v := mustParse(t, `{"a": "42.5", "b": "12%", "c": 3.6, "d": "n/a", "e": [7]}`)
	if got := v.Field("a").Float(0); got != 42.5 {
		t.Errorf("a = %v", got)
	}
	if got := v.Field("b").Float(0); got != 12 {
		t.Errorf("b = %v", got)
	}
	if got := v.Field("c").Int(0); got != 4 {
		t.Errorf("c = %v", got)
	}
	if got := v.Field("d").Float(-1); got != -1 {
		t.Errorf("d = %v", got)
	}
	if got := v.Field("e").Float(0); got != 7 {
		t.Errorf("e = %v", got)
	}
}

func TestValue_StringRendersScalars(t *testing.T) {
	v := mustParse(t, `{"n": 5, "b": false, "l": ["x", "y"], "empty": "  "}`)
	if got := v.Field("n").String(""); got != "5" {
		t.Errorf("n = %q", got)
	}
	if got := v.Field("b").String(""); got != "false" {
		t.Errorf("b = %q", got)
	}
	if got := v.Field("l").String(""); got != "x; y" {
		t.Errorf("l = %q", got)
	}
	if got := v.Field("empty").String("def"); got != "def" {
		t.Errorf("empty = %q", got)
	}
}

func TestValue_FieldOnListUsesFirstObject(t *testing.T) {
	v := mustParse(t, `[{"startup_name": "Acme"}]`)
	if got := v.Field("startup_name").String(""); got != "Acme" {
		t.Errorf("startup_name = %q", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(150, 0, 100) != 100 || Clamp(-3, 0, 100) != 0 || Clamp(42, 0, 100) != 42 {
		t.Error("Clamp out of range")
	}
}

func TestValue_Label(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{"Market risk", "Market risk"},
		{map[string]any{"name": "Team", "level": "high"}, "Team"},
		{map[string]any{"question": "Why us?"}, "fallback"},
		{nil, "fallback"},
	}
	for _, tt := range tests {
		if got := Of(tt.raw).Label("name", "fallback"); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
