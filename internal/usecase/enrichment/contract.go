package enrichment

import (
	"context"
	"time"
)

// cache is the consumer interface for the search result cache (ISP).
type cache interface {
	Key(id string) string
	Get(ctx context.Context, label, key string) ([]byte, bool)
	Put(ctx context.Context, key string, data []byte, ttl time.Duration) bool
	Evict(ctx context.Context, key string)
}
