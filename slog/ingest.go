package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rxdocs/rxdocs"
)

// Ensure LoggingIngestService implements rxdocs.IngestService.
var _ rxdocs.IngestService = (*LoggingIngestService)(nil)

// LoggingIngestService wraps an IngestService with write-path logging.
type LoggingIngestService struct {
	next   rxdocs.IngestService
	logger *slog.Logger
}

// NewLoggingIngestService creates a new LoggingIngestService.
func NewLoggingIngestService(next rxdocs.IngestService, logger *slog.Logger) *LoggingIngestService {
	return &LoggingIngestService{next: next, logger: logger}
}

// CreateSection delegates to the wrapped service and logs the write.
func (s *LoggingIngestService) CreateSection(ctx context.Context, section *rxdocs.Section) error {
	if err := s.next.CreateSection(ctx, section); err != nil {
		s.logger.Error("create section failed",
			"slug", section.Slug,
			"position", section.Position,
			"error", err,
		)
		return err
	}
	s.logger.Debug("section created",
		"slug", section.Slug,
		"position", section.Position,
		"heading", section.Heading,
	)
	return nil
}

// UpsertComponent delegates to the wrapped service and logs the write.
func (s *LoggingIngestService) UpsertComponent(ctx context.Context, component *rxdocs.Component) error {
	if err := s.next.UpsertComponent(ctx, component); err != nil {
		s.logger.Error("upsert component failed",
			"name", component.Name,
			"error", err,
		)
		return err
	}
	s.logger.Debug("component upserted",
		"name", component.Name,
		"category", component.Category,
	)
	return nil
}

// Clear delegates to the wrapped service and logs the reset.
func (s *LoggingIngestService) Clear(ctx context.Context) error {
	begin := time.Now()
	if err := s.next.Clear(ctx); err != nil {
		s.logger.Error("clear failed", "error", err)
		return err
	}
	s.logger.Info("store cleared", "duration", time.Since(begin))
	return nil
}
