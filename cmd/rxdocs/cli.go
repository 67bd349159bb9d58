package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/rxdocs/rxdocs"
	"github.com/rxdocs/rxdocs/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB         *sqlite.DB
	Sections   rxdocs.SectionService
	Components rxdocs.ComponentService
	Search     rxdocs.SearchService
	Ingest     rxdocs.IngestService
	Stats      rxdocs.StatsService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve      ServeCmd      `cmd:"" help:"Serve the documentation API over HTTP"`
	Ingest     IngestCmd     `cmd:"" help:"Load sections and components from a JSON dump"`
	Search     SearchCmd     `cmd:"" help:"Search documentation sections"`
	Page       PageCmd       `cmd:"" help:"Show a full documentation page by slug"`
	Component  ComponentCmd  `cmd:"" help:"Show a component by name"`
	Components ComponentsCmd `cmd:"" help:"List documented components"`
	Stats      StatsCmd      `cmd:"" help:"Show store statistics"`
	Clear      ClearCmd      `cmd:"" help:"Delete all sections and components"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" help:"HTTP listen address"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	File  string `arg:"" help:"JSON dump with sections and components"`
	Clear bool   `help:"Clear the store before loading"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"10" help:"Max results (1-50)"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Slug string `arg:"" help:"Page slug, e.g. library/layout/box"`
}

// ComponentCmd is the "component" subcommand.
type ComponentCmd struct {
	Name string `arg:"" help:"Component name, with or without the rx. prefix"`
}

// ComponentsCmd is the "components" subcommand.
type ComponentsCmd struct {
	Category string `short:"c" help:"Filter by exact category"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm deletion"`
}
