package main

import (
	"fmt"
	"strings"

	"github.com/rxdocs/rxdocs"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	page, err := deps.Sections.FindPage(deps.Ctx, c.Slug)
	if err != nil {
		if rxdocs.ErrorCode(err) == rxdocs.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'rxdocs search' to find pages.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n", page.Title, page.URL)
	for _, section := range page.Sections {
		fmt.Fprintf(deps.Stdout, "%s %s\n\n%s\n\n", strings.Repeat("#", section.Level),
			section.Heading, section.Content)
	}

	return nil
}
