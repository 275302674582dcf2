package mock

import (
	"github.com/fwojciec/pagesearch"
)

var _ pagesearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]pagesearch.ExtractedSection, error)
}

func (e *Extractor) Extract(html string) ([]pagesearch.ExtractedSection, error) {
	return e.ExtractFn(html)
}
