package main

import (
	"fmt"

	"github.com/rxdocs/rxdocs"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return rxdocs.Errorf(rxdocs.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Ingest.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cleared all sections and components.")
	return nil
}
