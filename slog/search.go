// Package slog provides logging decorators for rxdocs services using
// log/slog structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rxdocs/rxdocs"
)

// Ensure LoggingSearchService implements rxdocs.SearchService.
var _ rxdocs.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with query logging.
type LoggingSearchService struct {
	next   rxdocs.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next rxdocs.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// SearchSections delegates to the wrapped service and logs the query, the
// result count, and the duration. Failures are logged with the underlying
// error before propagating; degraded-to-empty results never happen silently.
func (s *LoggingSearchService) SearchSections(ctx context.Context, query string, limit int) ([]*rxdocs.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.SearchSections(ctx, query, limit)
	if err != nil {
		s.logger.Error("search failed",
			"query", query,
			"limit", limit,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("search",
		"query", query,
		"limit", limit,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}
