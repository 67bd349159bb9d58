package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/rxdocs/rxdocs"
)

// Compile-time interface verification.
var _ rxdocs.SectionService = (*SectionService)(nil)

// SectionService implements rxdocs.SectionService using SQLite.
type SectionService struct {
	db *DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *DB) *SectionService {
	return &SectionService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateSection appends a new section row. The FTS insert trigger fires
// inside the same statement, so the search index entry commits or fails
// together with the row. No uniqueness is enforced on (slug, position);
// incoherent positions produce an incorrectly ordered page, not an error.
func (s *SectionService) CreateSection(ctx context.Context, section *rxdocs.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}

	section.ContentHash = hashContent(section.Content)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (slug, title, heading, level, content, content_hash, position, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, section.Slug, section.Title, section.Heading, section.Level, section.Content,
		section.ContentHash, section.Position, section.URL)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	section.ID = int(id)

	return nil
}

// FindPage fetches all sections with the given slug ordered by position and
// assembles them into a page. Page-level title and URL come from the
// lowest-position row.
func (s *SectionService) FindPage(ctx context.Context, slug string) (*rxdocs.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, heading, level, content, url
		FROM sections
		WHERE slug = ?
		ORDER BY position
	`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var page *rxdocs.Page
	for rows.Next() {
		var title, url string
		var section rxdocs.PageSection
		if err := rows.Scan(&title, &section.Heading, &section.Level, &section.Content, &url); err != nil {
			return nil, err
		}
		if page == nil {
			page = &rxdocs.Page{Slug: slug, Title: title, URL: url}
		}
		page.Sections = append(page.Sections, &section)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if page == nil {
		return nil, rxdocs.Errorf(rxdocs.ENOTFOUND, "page %q not found", slug)
	}

	return page, nil
}
