package rxdocs

import "context"

// Stats summarizes store contents. Pages counts distinct section slugs, not
// section rows.
type Stats struct {
	Pages      int `json:"pages"`
	Sections   int `json:"sections"`
	Components int `json:"components"`
}

// StatsService reports store counts for health and readiness checks.
type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}
