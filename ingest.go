package rxdocs

import "context"

// IngestService is the write seam for the store. An external indexer is the
// only writer; every mutation is funneled through this interface so future
// validation has a single place to live.
type IngestService interface {
	// CreateSection appends one documentation section.
	CreateSection(ctx context.Context, section *Section) error

	// UpsertComponent inserts or replaces one catalog component.
	UpsertComponent(ctx context.Context, component *Component) error

	// Clear deletes every section and component ahead of a full re-ingest.
	// Irreversible. Clear must not run concurrently with active readers;
	// the caller serializes it.
	Clear(ctx context.Context) error
}
