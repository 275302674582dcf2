package sqlite

import (
	"context"

	"github.com/fwojciec/pagesearch"
)

// Compile-time interface verification.
var _ pagesearch.CorpusSource = (*CorpusSource)(nil)

// CorpusSource loads the sections of a stored corpus, resolved by name.
// It adapts the storage services to the pagesearch.CorpusSource contract
// so the server can serve database-backed corpora.
type CorpusSource struct {
	corpora  *CorpusService
	sections *SectionService
	name     string
}

// NewCorpusSource creates a CorpusSource for the named corpus.
func NewCorpusSource(db *DB, name string) *CorpusSource {
	return &CorpusSource{
		corpora:  NewCorpusService(db),
		sections: NewSectionService(db),
		name:     name,
	}
}

// Load returns the corpus sections in position order.
// A missing corpus is ENOTFOUND; a failing database is EUNAVAILABLE so
// callers can tell a load failure apart from an empty corpus.
func (s *CorpusSource) Load(ctx context.Context) ([]*pagesearch.Section, error) {
	corpora, err := s.corpora.FindCorpora(ctx, pagesearch.CorpusFilter{Name: &s.name, Limit: 1})
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EUNAVAILABLE, "corpus store unavailable")
	}
	if len(corpora) == 0 {
		return nil, pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus %q not found", s.name)
	}

	sections, err := s.sections.FindSections(ctx, pagesearch.SectionFilter{
		CorpusID: &corpora[0].ID,
		SortBy:   pagesearch.SortByPosition,
	})
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EUNAVAILABLE, "corpus store unavailable")
	}

	return sections, nil
}
