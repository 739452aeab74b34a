package resultcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/db"
)

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn   func(ctx context.Context, key string) ([]byte, error)
	setNXFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	delFn   func(ctx context.Context, key string) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setNXFn != nil {
		return m.setNXFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockKVStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func newTestCache(t *testing.T, logger *zap.Logger) (*Cache, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	if logger == nil {
		logger = zap.NewNop()
	}
	return New(ms, "test:", logger), ms
}
