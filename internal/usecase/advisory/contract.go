package advisory

import (
	"context"

	"github.com/kailas-cloud/navigator/internal/domain"
)

// lookup is the consumer interface for search enrichment (ISP).
type lookup interface {
	Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchRecord
	Gather(ctx context.Context, queries []string, opts domain.SearchOptions) []domain.SearchRecord
}
