package sqlite_test

import (
	"context"
	"testing"

	"github.com/rxdocs/rxdocs"
	"github.com/rxdocs/rxdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSection(t *testing.T, db *sqlite.DB, slug string, position int, heading string) *rxdocs.Section {
	t.Helper()
	svc := sqlite.NewSectionService(db)
	section := &rxdocs.Section{
		Slug:     slug,
		Title:    "Box",
		Heading:  heading,
		Level:    1,
		Content:  "Box wraps its children in a plain container.",
		Position: position,
		URL:      "https://reflex.dev/docs/" + slug,
	}
	require.NoError(t, svc.CreateSection(context.Background(), section))
	return section
}

func TestSectionService_CreateSection(t *testing.T) {
	t.Parallel()

	t.Run("creates section with generated ID and content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		section := &rxdocs.Section{
			Slug:     "library/layout/box",
			Title:    "Box",
			Heading:  "Overview",
			Level:    1,
			Content:  "Box wraps its children.",
			Position: 0,
			URL:      "https://reflex.dev/docs/library/layout/box",
		}

		err := svc.CreateSection(ctx, section)
		require.NoError(t, err)

		assert.NotZero(t, section.ID, "ID should be generated")
		assert.NotEmpty(t, section.ContentHash, "ContentHash should be generated")
	})

	t.Run("returns EINVALID for invalid section", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		section := &rxdocs.Section{} // missing required fields

		err := svc.CreateSection(ctx, section)
		require.Error(t, err)
		assert.Equal(t, rxdocs.EINVALID, rxdocs.ErrorCode(err))
	})

	t.Run("synchronizes the search index on insert", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createTestSection(t, db, "library/layout/box", 0, "Overview")
		ctx := context.Background()

		var count int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sections_fts").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "every section insert produces exactly one index entry")
	})

	t.Run("allows duplicate positions without error", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createTestSection(t, db, "library/layout/box", 0, "Overview")
		createTestSection(t, db, "library/layout/box", 0, "Also position zero")
	})
}

func TestSectionService_FindPage(t *testing.T) {
	t.Parallel()

	t.Run("returns sections in position order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		// Insert out of order to prove ordering comes from position.
		createTestSection(t, db, "library/layout/box", 2, "Styling")
		createTestSection(t, db, "library/layout/box", 0, "Overview")
		createTestSection(t, db, "library/layout/box", 1, "Usage")

		page, err := svc.FindPage(ctx, "library/layout/box")
		require.NoError(t, err)

		require.Len(t, page.Sections, 3)
		assert.Equal(t, "Overview", page.Sections[0].Heading)
		assert.Equal(t, "Usage", page.Sections[1].Heading)
		assert.Equal(t, "Styling", page.Sections[2].Heading)
	})

	t.Run("uses lowest-position section for page title and URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		first := &rxdocs.Section{
			Slug:     "library/forms/button",
			Title:    "Button",
			Heading:  "Overview",
			Level:    1,
			Content:  "A clickable button.",
			Position: 0,
			URL:      "https://reflex.dev/docs/library/forms/button",
		}
		require.NoError(t, svc.CreateSection(ctx, first))
		createTestSection(t, db, "library/forms/button", 1, "Usage")

		page, err := svc.FindPage(ctx, "library/forms/button")
		require.NoError(t, err)
		assert.Equal(t, "library/forms/button", page.Slug)
		assert.Equal(t, first.Title, page.Title)
		assert.Equal(t, first.URL, page.URL)
	})

	t.Run("returns ENOTFOUND when no sections match", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		_, err := svc.FindPage(ctx, "no/such/page")
		require.Error(t, err)
		assert.Equal(t, rxdocs.ENOTFOUND, rxdocs.ErrorCode(err))
	})

	t.Run("does not mix sections across slugs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSectionService(db)
		ctx := context.Background()

		createTestSection(t, db, "library/layout/box", 0, "Overview")
		createTestSection(t, db, "library/layout/stack", 0, "Overview")

		page, err := svc.FindPage(ctx, "library/layout/box")
		require.NoError(t, err)
		assert.Len(t, page.Sections, 1)
	})
}
