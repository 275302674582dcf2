package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagesearch"
)

// Ensure LoggingSearcher implements pagesearch.Searcher.
var _ pagesearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   pagesearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next pagesearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(corpus []*pagesearch.Section, query string) *pagesearch.SearchResult {
	begin := time.Now()
	result := s.next.Search(corpus, query)
	s.logger.Info("search",
		"query", query,
		"status", result.Status,
		"matches", len(result.Matches),
		"duration", time.Since(begin),
	)
	return result
}
