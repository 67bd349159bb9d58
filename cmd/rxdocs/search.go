package main

import (
	"fmt"

	"github.com/rxdocs/rxdocs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.SearchSections(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	for i, result := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s (%s, score %.2f)\n   %s\n", i+1,
			result.Title, result.Slug, result.Score, result.Snippet)
	}

	return nil
}
