package mock

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagesearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn if set, otherwise it is a no-op.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
