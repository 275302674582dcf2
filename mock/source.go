package mock

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.CorpusSource = (*CorpusSource)(nil)

// CorpusSource is a mock implementation of pagesearch.CorpusSource.
type CorpusSource struct {
	LoadFn func(ctx context.Context) ([]*pagesearch.Section, error)
}

func (s *CorpusSource) Load(ctx context.Context) ([]*pagesearch.Section, error) {
	return s.LoadFn(ctx)
}
