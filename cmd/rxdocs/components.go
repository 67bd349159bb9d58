package main

import (
	"fmt"

	"github.com/rxdocs/rxdocs"
)

// Run executes the components command.
func (c *ComponentsCmd) Run(deps *Dependencies) error {
	var filter rxdocs.ComponentFilter
	if c.Category != "" {
		filter.Category = &c.Category
	}

	components, err := deps.Components.FindComponents(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
		return err
	}

	if len(components) == 0 {
		fmt.Fprintln(deps.Stdout, "No components found. Use 'rxdocs ingest' to load a dump.")
		return nil
	}

	for _, component := range components {
		category := component.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(deps.Stdout, "%-24s %-12s %s\n", component.Name, category, component.Description)
	}

	return nil
}
