package sqlite

import (
	"context"

	"github.com/rxdocs/rxdocs"
)

// Compile-time interface verification.
var _ rxdocs.StatsService = (*StatsService)(nil)

// StatsService implements rxdocs.StatsService using SQLite.
type StatsService struct {
	db *DB
}

// NewStatsService creates a new StatsService.
func NewStatsService(db *DB) *StatsService {
	return &StatsService{db: db}
}

// Stats returns store counts. Pages counts distinct slugs, not section rows.
func (s *StatsService) Stats(ctx context.Context) (*rxdocs.Stats, error) {
	var stats rxdocs.Stats

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sections").Scan(&stats.Sections); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT slug) FROM sections").Scan(&stats.Pages); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM components").Scan(&stats.Components); err != nil {
		return nil, err
	}

	return &stats, nil
}
