package db

import (
	"context"
	"time"
)

// Store is the cache database facade used by the composition root.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides expiring key-value operations.
type KVStore interface {
	// Get returns ErrKeyNotFound for absent or expired keys.
	Get(ctx context.Context, key string) ([]byte, error)
	// SetNX writes only when the key is absent and returns ErrKeyExists otherwise.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Del removes a key; removing an absent key is not an error.
	Del(ctx context.Context, key string) error
}
