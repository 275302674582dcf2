package pagesearch

import "context"

// Asker provides natural language question answering over a corpus.
type Asker interface {
	// Ask answers a natural language question about a corpus's sections.
	// Returns ENOTFOUND if the corpus does not exist.
	Ask(ctx context.Context, corpusID string, question string) (string, error)
}
