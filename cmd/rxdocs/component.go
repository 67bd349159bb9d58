package main

import (
	"fmt"

	"github.com/rxdocs/rxdocs"
)

// Run executes the component command.
func (c *ComponentCmd) Run(deps *Dependencies) error {
	component, err := deps.Components.FindComponentByName(deps.Ctx, c.Name)
	if err != nil {
		if rxdocs.ErrorCode(err) == rxdocs.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: component %q not found. Use 'rxdocs components' to list them.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", component.Name)
	if component.Category != "" {
		fmt.Fprintf(deps.Stdout, "Category: %s\n", component.Category)
	}
	fmt.Fprintf(deps.Stdout, "%s\n", component.Description)
	if component.DocSlug != "" {
		fmt.Fprintf(deps.Stdout, "Docs: %s\n", component.DocSlug)
	}
	if component.URL != "" {
		fmt.Fprintf(deps.Stdout, "URL: %s\n", component.URL)
	}

	return nil
}
