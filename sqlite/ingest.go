package sqlite

import (
	"context"
	"fmt"

	"github.com/rxdocs/rxdocs"
)

// Compile-time interface verification.
var _ rxdocs.IngestService = (*IngestService)(nil)

// IngestService implements rxdocs.IngestService using SQLite. It is a thin
// pass-through over the section and component services so that every write
// path runs through one seam.
type IngestService struct {
	db         *DB
	sections   *SectionService
	components *ComponentService
}

// NewIngestService creates a new IngestService.
func NewIngestService(db *DB) *IngestService {
	return &IngestService{
		db:         db,
		sections:   NewSectionService(db),
		components: NewComponentService(db),
	}
}

// CreateSection appends one documentation section.
func (s *IngestService) CreateSection(ctx context.Context, section *rxdocs.Section) error {
	return s.sections.CreateSection(ctx, section)
}

// UpsertComponent inserts or replaces one catalog component.
func (s *IngestService) UpsertComponent(ctx context.Context, component *rxdocs.Component) error {
	return s.components.UpsertComponent(ctx, component)
}

// Clear deletes every section and component in one transaction. The section
// delete trigger removes the matching search index entries inside the same
// transaction, so either everything goes or nothing does. Callers must not
// run Clear concurrently with active readers.
func (s *IngestService) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sections"); err != nil {
		return fmt.Errorf("failed to clear sections: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM components"); err != nil {
		return fmt.Errorf("failed to clear components: %w", err)
	}

	return tx.Commit()
}
