package mock

import (
	"context"

	"github.com/rxdocs/rxdocs"
)

var _ rxdocs.StatsService = (*StatsService)(nil)

// StatsService is a mock implementation of rxdocs.StatsService.
type StatsService struct {
	StatsFn func(ctx context.Context) (*rxdocs.Stats, error)
}

func (s *StatsService) Stats(ctx context.Context) (*rxdocs.Stats, error) {
	return s.StatsFn(ctx)
}
