package domain

import "context"

// Vertical selects the search index a query runs against.
type Vertical string

const (
	// VerticalWeb is general web search.
	VerticalWeb Vertical = "web"
	// VerticalNews is news search.
	VerticalNews Vertical = "news"
)

// SearchRecord is a single ranked search hit.
type SearchRecord struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// SearchOptions tune a single search call.
type SearchOptions struct {
	Vertical Vertical
	Country  string
	Language string
	Num      int
}

// Searcher is the web search backend contract.
type Searcher interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchRecord, error)
}
