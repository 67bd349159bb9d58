package mock

import (
	"context"

	"github.com/rxdocs/rxdocs"
)

var _ rxdocs.ComponentService = (*ComponentService)(nil)

// ComponentService is a mock implementation of rxdocs.ComponentService.
type ComponentService struct {
	UpsertComponentFn     func(ctx context.Context, component *rxdocs.Component) error
	FindComponentByNameFn func(ctx context.Context, name string) (*rxdocs.Component, error)
	FindComponentsFn      func(ctx context.Context, filter rxdocs.ComponentFilter) ([]*rxdocs.Component, error)
}

func (s *ComponentService) UpsertComponent(ctx context.Context, component *rxdocs.Component) error {
	return s.UpsertComponentFn(ctx, component)
}

func (s *ComponentService) FindComponentByName(ctx context.Context, name string) (*rxdocs.Component, error) {
	return s.FindComponentByNameFn(ctx, name)
}

func (s *ComponentService) FindComponents(ctx context.Context, filter rxdocs.ComponentFilter) ([]*rxdocs.Component, error) {
	return s.FindComponentsFn(ctx, filter)
}
