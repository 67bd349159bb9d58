package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rxdocs/rxdocs"
)

// Compile-time interface verification.
var _ rxdocs.ComponentService = (*ComponentService)(nil)

// ComponentService implements rxdocs.ComponentService using SQLite.
type ComponentService struct {
	db *DB
}

// NewComponentService creates a new ComponentService.
func NewComponentService(db *DB) *ComponentService {
	return &ComponentService{db: db}
}

// nullString maps the empty string to SQL NULL for optional columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// UpsertComponent inserts the component or replaces the record with the same
// name in full. Optional fields are stored as NULL when empty.
func (s *ComponentService) UpsertComponent(ctx context.Context, component *rxdocs.Component) error {
	if err := component.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO components (name, category, description, doc_slug, url)
		VALUES (?, ?, ?, ?, ?)
	`, component.Name, nullString(component.Category), component.Description,
		nullString(component.DocSlug), nullString(component.URL))

	return err
}

// FindComponentByName resolves a component with a two-step alias fallback:
// the rx.-prefixed form of the name is tried first, then the bare form.
// Both attempts exist because clients refer to components either way, and
// skipping one changes observable behavior for ambiguous inputs.
func (s *ComponentService) FindComponentByName(ctx context.Context, name string) (*rxdocs.Component, error) {
	namespaced := name
	if !strings.HasPrefix(name, rxdocs.ComponentNamespace) {
		namespaced = rxdocs.ComponentNamespace + name
	}

	component, err := s.findExactName(ctx, namespaced)
	if err == nil {
		return component, nil
	}
	if rxdocs.ErrorCode(err) != rxdocs.ENOTFOUND {
		return nil, err
	}

	component, err = s.findExactName(ctx, strings.TrimPrefix(name, rxdocs.ComponentNamespace))
	if err == nil {
		return component, nil
	}
	if rxdocs.ErrorCode(err) != rxdocs.ENOTFOUND {
		return nil, err
	}

	return nil, rxdocs.Errorf(rxdocs.ENOTFOUND, "component %q not found", name)
}

// findExactName looks up a component by its exact stored name.
func (s *ComponentService) findExactName(ctx context.Context, name string) (*rxdocs.Component, error) {
	var component rxdocs.Component
	var category, docSlug, url sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT name, category, description, doc_slug, url
		FROM components
		WHERE name = ?
	`, name).Scan(&component.Name, &category, &component.Description, &docSlug, &url)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, rxdocs.Errorf(rxdocs.ENOTFOUND, "component %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	component.Category = category.String
	component.DocSlug = docSlug.String
	component.URL = url.String

	return &component, nil
}

// FindComponents retrieves components matching the filter, ordered by name
// ascending.
func (s *ComponentService) FindComponents(ctx context.Context, filter rxdocs.ComponentFilter) ([]*rxdocs.Component, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, category, description, doc_slug, url FROM components WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY name ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []*rxdocs.Component
	for rows.Next() {
		var component rxdocs.Component
		var category, docSlug, url sql.NullString

		if err := rows.Scan(&component.Name, &category, &component.Description, &docSlug, &url); err != nil {
			return nil, err
		}

		component.Category = category.String
		component.DocSlug = docSlug.String
		component.URL = url.String

		components = append(components, &component)
	}

	return components, rows.Err()
}
