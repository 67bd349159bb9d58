package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/rxdocs/rxdocs"
	rxslog "github.com/rxdocs/rxdocs/slog"
	"github.com/rxdocs/rxdocs/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Sections   rxdocs.SectionService
	Components rxdocs.ComponentService
	Search     rxdocs.SearchService
	Ingest     rxdocs.IngestService
	Stats      rxdocs.StatsService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rxdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rxdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RXDOCS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Sections = sqlite.NewSectionService(m.DB)
	m.Components = sqlite.NewComponentService(m.DB)
	m.Search = rxslog.NewLoggingSearchService(sqlite.NewSearchService(m.DB), logger)
	m.Ingest = rxslog.NewLoggingIngestService(sqlite.NewIngestService(m.DB), logger)
	m.Stats = sqlite.NewStatsService(m.DB)

	deps.DB = m.DB
	deps.Sections = m.Sections
	deps.Components = m.Components
	deps.Search = m.Search
	deps.Ingest = m.Ingest
	deps.Stats = m.Stats

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("RXDOCS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rxdocs.db"
	}
	dir := filepath.Join(home, ".rxdocs")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rxdocs.db")
}
