package mock

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.Asker = (*Asker)(nil)

// Asker is a mock implementation of pagesearch.Asker.
type Asker struct {
	AskFn func(ctx context.Context, corpusID, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, corpusID, question string) (string, error) {
	return a.AskFn(ctx, corpusID, question)
}
