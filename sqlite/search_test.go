package sqlite_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rxdocs/rxdocs"
	"github.com/rxdocs/rxdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_SearchSections(t *testing.T) {
	t.Parallel()

	t.Run("finds matching sections", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		sections := sqlite.NewSectionService(db)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug:     "library/layout/box",
			Title:    "Box",
			Heading:  "Overview",
			Level:    1,
			Content:  "Box wraps its children in a plain container.",
			Position: 0,
			URL:      "https://reflex.dev/docs/library/layout/box",
		}))
		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug:     "library/forms/button",
			Title:    "Button",
			Heading:  "Overview",
			Level:    1,
			Content:  "A clickable button triggers events.",
			Position: 0,
			URL:      "https://reflex.dev/docs/library/forms/button",
		}))

		results, err := search.SearchSections(ctx, "box", 10)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "library/layout/box", results[0].Slug)
		assert.Equal(t, "Box", results[0].Title)
		assert.Equal(t, "https://reflex.dev/docs/library/layout/box", results[0].URL)
		assert.GreaterOrEqual(t, results[0].Score, 0.0, "scores are normalized to non-negative")
	})

	t.Run("returns empty list for whitespace-only query", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		for _, query := range []string{"", "   ", "\t\n  "} {
			results, err := search.SearchSections(ctx, query, 10)
			require.NoError(t, err, "whitespace query %q is not an error", query)
			assert.Empty(t, results)
		}
	})

	t.Run("matches all terms conjunctively", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		sections := sqlite.NewSectionService(db)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug: "library/layout/box", Title: "Box", Heading: "Overview", Level: 1,
			Content: "Box wraps children.", Position: 0, URL: "u",
		}))
		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug: "library/layout/stack", Title: "Stack", Heading: "Overview", Level: 1,
			Content: "Stack arranges children vertically.", Position: 0, URL: "u",
		}))

		results, err := search.SearchSections(ctx, "box children", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "library/layout/box", results[0].Slug)
	})

	t.Run("never interprets special characters as query syntax", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		sections := sqlite.NewSectionService(db)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug: "library/forms/button", Title: "Button", Heading: "Usage", Level: 2,
			Content: "Use rx.button(on_click=handler) to wire events.", Position: 0, URL: "u",
		}))

		for _, query := range []string{
			`rx.button`,
			`"quoted"`,
			`paren(thesis)`,
			`wild*card`,
			`colon:term`,
			`dash-term NOT AND OR`,
			`^caret`,
		} {
			_, err := search.SearchSections(ctx, query, 10)
			require.NoError(t, err, "query %q must not produce a syntax error", query)
		}

		results, err := search.SearchSections(ctx, "rx.button", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
	})

	t.Run("orders results best-first and respects limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		sections := sqlite.NewSectionService(db)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		// The heavily repeating document should rank above the single mention.
		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug: "library/layout/box", Title: "Box", Heading: "Overview", Level: 1,
			Content: strings.Repeat("box layout ", 30), Position: 0, URL: "u",
		}))
		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug: "library/misc/note", Title: "Note", Heading: "Overview", Level: 1,
			Content: "A note mentions box once among many other unrelated words here.",
			Position: 0, URL: "u",
		}))
		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug: "library/misc/aside", Title: "Aside", Heading: "Overview", Level: 1,
			Content: "An aside also talks about the box pattern in passing detail.",
			Position: 0, URL: "u",
		}))

		results, err := search.SearchSections(ctx, "box", 2)
		require.NoError(t, err)

		require.Len(t, results, 2, "result list never exceeds the requested limit")
		assert.Equal(t, "library/layout/box", results[0].Slug)
	})

	t.Run("clamps out-of-range limits", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		sections := sqlite.NewSectionService(db)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		for i := 0; i < rxdocs.MaxSearchLimit+10; i++ {
			require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
				Slug: "library/misc/page", Title: "Page", Heading: "H", Level: 1,
				Content: "box content", Position: i, URL: "u",
			}))
		}

		results, err := search.SearchSections(ctx, "box", 0)
		require.NoError(t, err)
		assert.Len(t, results, rxdocs.DefaultSearchLimit)

		results, err = search.SearchSections(ctx, "box", 10000)
		require.NoError(t, err)
		assert.Len(t, results, rxdocs.MaxSearchLimit)
	})

	t.Run("builds snippets from content", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		sections := sqlite.NewSectionService(db)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		long := "box " + strings.Repeat("padding words ", 40)
		require.NoError(t, sections.CreateSection(ctx, &rxdocs.Section{
			Slug: "library/layout/box", Title: "Box", Heading: "Overview", Level: 1,
			Content: long, Position: 0, URL: "u",
		}))

		results, err := search.SearchSections(ctx, "box", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.LessOrEqual(t, len([]rune(results[0].Snippet)), rxdocs.SnippetLength+3)
		assert.True(t, strings.HasSuffix(results[0].Snippet, "..."))
		assert.Equal(t, rxdocs.Snippet(long), results[0].Snippet)
	})

	t.Run("returns empty list when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		results, err := search.SearchSections(ctx, "absent", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
