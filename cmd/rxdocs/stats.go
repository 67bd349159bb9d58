package main

import (
	"fmt"

	"github.com/rxdocs/rxdocs"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Stats.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Pages:      %d\n", stats.Pages)
	fmt.Fprintf(deps.Stdout, "Sections:   %d\n", stats.Sections)
	fmt.Fprintf(deps.Stdout, "Components: %d\n", stats.Components)

	return nil
}
