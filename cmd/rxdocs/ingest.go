package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rxdocs/rxdocs"
	"golang.org/x/sync/errgroup"
)

// ingestConcurrency bounds concurrent writes during bulk load. The store's
// single connection serializes them; the bound just keeps memory flat.
const ingestConcurrency = 4

// dump is the JSON shape produced by the external indexer.
type dump struct {
	Sections   []*rxdocs.Section   `json:"sections"`
	Components []*rxdocs.Component `json:"components"`
}

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open dump: %w", err)
	}
	defer f.Close()

	var d dump
	if err := json.NewDecoder(f).Decode(&d); err != nil {
		return fmt.Errorf("failed to decode dump: %w", err)
	}

	if c.Clear {
		if err := deps.Ingest.Clear(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
			return err
		}
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(ingestConcurrency)

	for _, section := range d.Sections {
		g.Go(func() error {
			return deps.Ingest.CreateSection(ctx, section)
		})
	}
	for _, component := range d.Components {
		g.Go(func() error {
			return deps.Ingest.UpsertComponent(ctx, component)
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %d sections and %d components from %s\n",
		len(d.Sections), len(d.Components), c.File)
	return nil
}
