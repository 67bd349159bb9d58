package rxdocs

import "context"

// Section represents one heading-delimited block of a documentation page.
// Many sections share a slug; position orders them within their page and is
// assigned by the ingester, never recomputed by the store.
type Section struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Heading     string `json:"heading"`
	Level       int    `json:"level"`
	Content     string `json:"content"`
	ContentHash string `json:"contentHash"`
	Position    int    `json:"position"`
	URL         string `json:"url"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.Slug == "" {
		return Errorf(EINVALID, "section slug required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	if s.Heading == "" {
		return Errorf(EINVALID, "section heading required")
	}
	if s.Level < 1 {
		return Errorf(EINVALID, "section level must be 1 or greater")
	}
	if s.Position < 0 {
		return Errorf(EINVALID, "section position must not be negative")
	}
	return nil
}

// PageSection is one section of an assembled page, in reading order.
type PageSection struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Content string `json:"content"`
}

// Page is a full documentation page reassembled from its sections. Title and
// URL are taken from the lowest-position section; the ingester is expected
// to keep them identical across all sections of a page.
type Page struct {
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	URL      string         `json:"url"`
	Sections []*PageSection `json:"sections"`
}

// SectionService represents a service for managing documentation sections.
type SectionService interface {
	// CreateSection appends a new section. Sections are immutable once
	// inserted; the only deletion path is IngestService.Clear.
	CreateSection(ctx context.Context, section *Section) error

	// FindPage reassembles the page identified by slug from its sections,
	// ordered by position ascending.
	// Returns ENOTFOUND if no sections match.
	FindPage(ctx context.Context, slug string) (*Page, error)
}
