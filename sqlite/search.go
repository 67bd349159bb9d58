package sqlite

import (
	"context"
	"math"
	"strings"

	"github.com/rxdocs/rxdocs"
)

// Compile-time interface verification.
var _ rxdocs.SearchService = (*SearchService)(nil)

// SearchService implements rxdocs.SearchService using SQLite FTS5.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// escapeQuery turns a free-text query into an FTS5 MATCH expression. The
// query is split on whitespace and every term is double-quoted so characters
// FTS5 treats as syntax (. : - * etc.) stay inert; embedded quotes are
// doubled. Space-separated quoted terms match conjunctively. Returns the
// empty string when the query holds no terms.
func escapeQuery(query string) string {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return ""
	}

	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
	}

	return strings.Join(quoted, " ")
}

// SearchSections ranks sections against query using FTS5's built-in BM25.
// bm25() reports negative values with lower meaning better, so the engine
// keeps ascending raw order (best first) and surfaces abs(raw) as the score.
// Index entries are joined back to the sections table for field values; the
// index itself is never returned to clients.
func (s *SearchService) SearchSections(ctx context.Context, query string, limit int) ([]*rxdocs.SearchResult, error) {
	match := escapeQuery(query)
	if match == "" {
		return []*rxdocs.SearchResult{}, nil
	}

	limit = rxdocs.ClampLimit(limit)

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.slug, s.title, s.content, s.url, bm25(sections_fts) AS score
		FROM sections_fts
		JOIN sections s ON s.id = sections_fts.rowid
		WHERE sections_fts MATCH ?
		ORDER BY score
		LIMIT ?
	`, match, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*rxdocs.SearchResult{}
	for rows.Next() {
		var content string
		var score float64
		var result rxdocs.SearchResult

		if err := rows.Scan(&result.Slug, &result.Title, &content, &result.URL, &score); err != nil {
			return nil, err
		}

		result.Score = math.Abs(score)
		result.Snippet = rxdocs.Snippet(content)

		results = append(results, &result)
	}

	return results, rows.Err()
}
