package rxdocs

import "context"

// ComponentNamespace is the prefix shared by fully-qualified component names
// (e.g. "rx.button").
const ComponentNamespace = "rx."

// Component represents a named, documented API element from the component
// catalog. Name is the unique key; Category, DocSlug and URL are optional.
type Component struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
	DocSlug     string `json:"docSlug,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Validate returns an error if the component contains invalid fields.
func (c *Component) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "component name required")
	}
	if c.Description == "" {
		return Errorf(EINVALID, "component description required")
	}
	return nil
}

// ComponentService represents a service for managing the component catalog.
type ComponentService interface {
	// UpsertComponent inserts the component, or replaces the existing
	// record with the same name in full.
	UpsertComponent(ctx context.Context, component *Component) error

	// FindComponentByName resolves a component by name. Names are accepted
	// with or without the rx. namespace prefix: the prefixed form is tried
	// first, then the bare form. Returns ENOTFOUND when both attempts fail.
	FindComponentByName(ctx context.Context, name string) (*Component, error)

	// FindComponents retrieves components matching the filter, ordered by
	// name ascending.
	FindComponents(ctx context.Context, filter ComponentFilter) ([]*Component, error)
}

// ComponentFilter represents a filter for FindComponents.
type ComponentFilter struct {
	// Category filters to an exact category match when non-nil.
	Category *string `json:"category"`
}
