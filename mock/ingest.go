package mock

import (
	"context"

	"github.com/rxdocs/rxdocs"
)

var _ rxdocs.IngestService = (*IngestService)(nil)

// IngestService is a mock implementation of rxdocs.IngestService.
type IngestService struct {
	CreateSectionFn   func(ctx context.Context, section *rxdocs.Section) error
	UpsertComponentFn func(ctx context.Context, component *rxdocs.Component) error
	ClearFn           func(ctx context.Context) error
}

func (s *IngestService) CreateSection(ctx context.Context, section *rxdocs.Section) error {
	return s.CreateSectionFn(ctx, section)
}

func (s *IngestService) UpsertComponent(ctx context.Context, component *rxdocs.Component) error {
	return s.UpsertComponentFn(ctx, component)
}

func (s *IngestService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
