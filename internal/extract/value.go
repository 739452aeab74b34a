package extract

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a node of a parsed document. The zero Value is absent.
// Accessors never fail: absent or mistyped data yields the caller's default.
type Value struct {
	raw any
}

// Of wraps a decoded JSON node.
func Of(raw any) Value {
	return Value{raw: raw}
}

// Raw returns the underlying node.
func (v Value) Raw() any { return v.raw }

// Present reports whether the node exists and is not null.
func (v Value) Present() bool { return v.raw != nil }

// IsList reports whether the node is an array.
func (v Value) IsList() bool {
	_, ok := v.raw.([]any)
	return ok
}

// Field returns a member of an object. A list whose first element is an
// object is treated as that object.
func (v Value) Field(name string) Value {
	m, ok := v.object()
	if !ok {
		return Value{}
	}
	return Of(m[name])
}

func (v Value) object() (map[string]any, bool) {
	switch x := v.raw.(type) {
	case map[string]any:
		return x, true
	case []any:
		if len(x) > 0 {
			m, ok := x[0].(map[string]any)
			return m, ok
		}
	}
	return nil, false
}

// String returns the node as trimmed text, or def when empty or not textual.
// Numbers and booleans are rendered; a one-element list yields its element;
// an object with a single text member yields that member.
func (v Value) String(def string) string {
	switch x := v.raw.(type) {
	case string:
		if t := strings.TrimSpace(x); t != "" {
			return t
		}
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case []any:
		if len(x) == 1 {
			return Of(x[0]).String(def)
		}
		if parts := v.Strings(); len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	case map[string]any:
		if s, ok := soleText(x); ok {
			return s
		}
	}
	return def
}

func soleText(m map[string]any) (string, bool) {
	var found string
	n := 0
	for _, val := range m {
		if s, ok := val.(string); ok && strings.TrimSpace(s) != "" {
			found = strings.TrimSpace(s)
			n++
		}
	}
	return found, n == 1
}

// Label returns the named member of an object, or the node's own text when
// it is not an object. It reads list items that may be either a bare name
// or an object carrying one.
func (v Value) Label(name, def string) string {
	if _, ok := v.raw.(map[string]any); ok {
		return v.Field(name).String(def)
	}
	return v.String(def)
}

// Float returns the node as a number. Numeric strings, optionally with a
// trailing percent sign, are accepted.
func (v Value) Float(def float64) float64 {
	var f float64
	var err error
	switch x := v.raw.(type) {
	case json.Number:
		f, err = x.Float64()
	case float64:
		f = x
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(x), "%")
		f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	case []any:
		if len(x) == 1 {
			return Of(x[0]).Float(def)
		}
		return def
	default:
		return def
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// Int returns the node as an integer, rounding fractional numbers.
func (v Value) Int(def int) int {
	if n, ok := v.raw.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	f := v.Float(math.NaN())
	if math.IsNaN(f) {
		return def
	}
	return int(math.Round(f))
}

// Bool returns the node as a boolean; "true"/"false" strings are accepted.
func (v Value) Bool(def bool) bool {
	switch x := v.raw.(type) {
	case bool:
		return x
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(x)); err == nil {
			return b
		}
	}
	return def
}

// Items returns the node as a list. A scalar or object becomes a
// single-element list; an absent node becomes an empty one.
func (v Value) Items() []Value {
	switch x := v.raw.(type) {
	case nil:
		return []Value{}
	case []any:
		out := make([]Value, 0, len(x))
		for _, e := range x {
			if e != nil {
				out = append(out, Of(e))
			}
		}
		return out
	default:
		return []Value{v}
	}
}

// Strings returns the node as a list of non-empty strings.
func (v Value) Strings() []string {
	items := v.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := it.String(""); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Clamp bounds f to [lo, hi].
func Clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}
