package domain

import "errors"

var (
	// ErrGenerationFailure signals an unreachable, throttled or empty generation backend.
	ErrGenerationFailure = errors.New("generation failure")
	// ErrSearchFailure signals a search backend failure.
	ErrSearchFailure = errors.New("search failure")
	// ErrCacheUnavailable signals that the result cache could not be reached.
	ErrCacheUnavailable = errors.New("cache unavailable")
	// ErrInvalidRequest signals a malformed request rejected before reaching a feature.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrMalformedOutput signals generated text that could not be parsed.
	ErrMalformedOutput = errors.New("malformed generation output")
)
