package mock

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of pagesearch.SectionService.
type SectionService struct {
	CreateSectionFn          func(ctx context.Context, section *pagesearch.Section) error
	FindSectionByIDFn        func(ctx context.Context, id string) (*pagesearch.Section, error)
	FindSectionsFn           func(ctx context.Context, filter pagesearch.SectionFilter) ([]*pagesearch.Section, error)
	DeleteSectionFn          func(ctx context.Context, id string) error
	DeleteSectionsByCorpusFn func(ctx context.Context, corpusID string) error
}

func (s *SectionService) CreateSection(ctx context.Context, section *pagesearch.Section) error {
	return s.CreateSectionFn(ctx, section)
}

func (s *SectionService) FindSectionByID(ctx context.Context, id string) (*pagesearch.Section, error) {
	return s.FindSectionByIDFn(ctx, id)
}

func (s *SectionService) FindSections(ctx context.Context, filter pagesearch.SectionFilter) ([]*pagesearch.Section, error) {
	return s.FindSectionsFn(ctx, filter)
}

func (s *SectionService) DeleteSection(ctx context.Context, id string) error {
	return s.DeleteSectionFn(ctx, id)
}

func (s *SectionService) DeleteSectionsByCorpus(ctx context.Context, corpusID string) error {
	return s.DeleteSectionsByCorpusFn(ctx, corpusID)
}
