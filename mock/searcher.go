package mock

import (
	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of pagesearch.Searcher.
type Searcher struct {
	SearchFn func(corpus []*pagesearch.Section, query string) *pagesearch.SearchResult
}

func (s *Searcher) Search(corpus []*pagesearch.Section, query string) *pagesearch.SearchResult {
	return s.SearchFn(corpus, query)
}
