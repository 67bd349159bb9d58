package mock

import (
	"context"

	"github.com/rxdocs/rxdocs"
)

var _ rxdocs.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of rxdocs.SearchService.
type SearchService struct {
	SearchSectionsFn func(ctx context.Context, query string, limit int) ([]*rxdocs.SearchResult, error)
}

func (s *SearchService) SearchSections(ctx context.Context, query string, limit int) ([]*rxdocs.SearchResult, error) {
	return s.SearchSectionsFn(ctx, query, limit)
}
