package mock

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.SectionStore = (*SectionStore)(nil)

// SectionStore is a mock implementation of pagesearch.SectionStore.
type SectionStore struct {
	SaveFn   func(ctx context.Context, section *pagesearch.Section) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *SectionStore) Save(ctx context.Context, section *pagesearch.Section) error {
	return s.SaveFn(ctx, section)
}

// Commit calls CommitFn if set, otherwise it is a no-op.
func (s *SectionStore) Commit() error {
	if s.CommitFn == nil {
		return nil
	}
	return s.CommitFn()
}

// Abort calls AbortFn if set, otherwise it is a no-op.
func (s *SectionStore) Abort() error {
	if s.AbortFn == nil {
		return nil
	}
	return s.AbortFn()
}
