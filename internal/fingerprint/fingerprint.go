// Package fingerprint derives stable cache identities from request values.
//
// A request is marshalled to JSON, canonicalised per RFC 8785 (sorted keys,
// no insignificant whitespace, normalised numbers) and hashed with sha256.
// Two requests with equal field values produce the same digest regardless
// of how the value was constructed or which map order it carried.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Canonical returns the RFC 8785 serialisation of v.
func Canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	out, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize request: %w", err)
	}
	return out, nil
}

// Digest returns the hex sha256 of the canonical form of v.
func Digest(v any) (string, error) {
	canonical, err := Canonical(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Key returns namespace + ":" + Digest(v).
//
// Requests are plain data; a value that cannot be serialised is a
// programming error, so Key panics instead of returning it.
func Key(namespace string, v any) string {
	d, err := Digest(v)
	if err != nil {
		panic(fmt.Sprintf("fingerprint %s: %v", namespace, err))
	}
	return namespace + ":" + d
}

// Text returns the hex sha256 of the concatenated parts.
func Text(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
