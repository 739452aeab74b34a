package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain"
)

// Parse decodes text as JSON. Text that does not decode as is has its
// code fence stripped, and then the outermost object or array inside the
// original or the stripped text is tried before giving up.
func Parse(text string) (Value, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return Value{}, fmt.Errorf("empty output: %w", domain.ErrMalformedOutput)
	}

	v, err := decode(raw)
	if err == nil {
		return v, nil
	}

	s := StripFence(raw)
	if s == "" {
		return Value{}, fmt.Errorf("empty output: %w", domain.ErrMalformedOutput)
	}
	candidates := []string{s}
	if inner, ok := outermost(raw); ok {
		candidates = append(candidates, inner)
	}
	if inner, ok := outermost(s); ok {
		candidates = append(candidates, inner)
	}
	for _, c := range candidates {
		if c == raw {
			continue
		}
		if v, cerr := decode(c); cerr == nil {
			return v, nil
		}
	}
	return Value{}, fmt.Errorf("parse output: %v: %w", err, domain.ErrMalformedOutput)
}

func decode(s string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("trailing data after document")
	}
	if raw == nil {
		return Value{}, fmt.Errorf("document is null")
	}
	return Of(raw), nil
}

// outermost returns the span from the first opening brace or bracket to
// the last matching closer.
func outermost(s string) (string, bool) {
	obj := strings.IndexByte(s, '{')
	arr := strings.IndexByte(s, '[')

	open, closer := obj, byte('}')
	if obj < 0 || (arr >= 0 && arr < obj) {
		open, closer = arr, ']'
	}
	if open < 0 {
		return "", false
	}
	end := strings.LastIndexByte(s, closer)
	if end <= open {
		return "", false
	}
	return s[open : end+1], true
}
