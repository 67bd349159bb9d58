package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	rxhttp "github.com/rxdocs/rxdocs/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := rxhttp.NewServer()
	server.Addr = c.Addr
	server.Sections = deps.Sections
	server.Components = deps.Components
	server.Search = deps.Search
	server.Stats = deps.Stats
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", c.Addr, err)
	}

	stats, err := deps.Stats.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Serving documentation API on %s (%d pages, %d sections, %d components)\n",
		server.URL(), stats.Pages, stats.Sections, stats.Components)

	<-ctx.Done()
	fmt.Fprintln(deps.Stdout, "Shutting down...")
	return server.Close()
}
