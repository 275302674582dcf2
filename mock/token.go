package mock

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of pagesearch.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, texts ...string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, texts ...string) (int, error) {
	return tc.CountTokensFn(ctx, texts...)
}
