package rxdocs

import "context"

// Search limits and snippet sizing.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	SnippetLength      = 200
)

// SearchResult is a single ranked hit from full-text search over sections.
// Score is non-negative; results arrive best-first.
type SearchResult struct {
	Slug    string  `json:"slug"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
	URL     string  `json:"url"`
}

// SearchService represents a service for ranked full-text search over
// documentation sections.
type SearchService interface {
	// SearchSections returns up to limit sections ranked by relevance to
	// query. A query that is empty after whitespace tokenization yields an
	// empty result set, not an error. A non-positive limit falls back to
	// DefaultSearchLimit; limits above MaxSearchLimit are clamped.
	SearchSections(ctx context.Context, query string, limit int) ([]*SearchResult, error)
}

// Snippet returns the leading excerpt of content used in search results: the
// first SnippetLength characters, with "..." appended when content is longer.
// The cut is character-exact, not word-boundary aware.
func Snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= SnippetLength {
		return content
	}
	return string(runes[:SnippetLength]) + "..."
}

// ClampLimit normalizes a requested result limit to [1, MaxSearchLimit],
// substituting DefaultSearchLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}
