package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesearch"
)

// Ensure LoggingCorpusSource implements pagesearch.CorpusSource.
var _ pagesearch.CorpusSource = (*LoggingCorpusSource)(nil)

// LoggingCorpusSource wraps a CorpusSource with debug logging.
type LoggingCorpusSource struct {
	next   pagesearch.CorpusSource
	logger *slog.Logger
}

// NewLoggingCorpusSource creates a new LoggingCorpusSource.
func NewLoggingCorpusSource(next pagesearch.CorpusSource, logger *slog.Logger) *LoggingCorpusSource {
	return &LoggingCorpusSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the operation.
func (s *LoggingCorpusSource) Load(ctx context.Context) (sections []*pagesearch.Section, err error) {
	defer func(begin time.Time) {
		s.logger.Info("corpus load",
			"count", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}
