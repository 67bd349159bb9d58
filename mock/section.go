package mock

import (
	"context"

	"github.com/rxdocs/rxdocs"
)

var _ rxdocs.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of rxdocs.SectionService.
type SectionService struct {
	CreateSectionFn func(ctx context.Context, section *rxdocs.Section) error
	FindPageFn      func(ctx context.Context, slug string) (*rxdocs.Page, error)
}

func (s *SectionService) CreateSection(ctx context.Context, section *rxdocs.Section) error {
	return s.CreateSectionFn(ctx, section)
}

func (s *SectionService) FindPage(ctx context.Context, slug string) (*rxdocs.Page, error) {
	return s.FindPageFn(ctx, slug)
}
