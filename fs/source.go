// Package fs provides file-based corpus loading and section export.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/pagesearch"
)

// Ensure CorpusSource implements pagesearch.CorpusSource at compile time.
var _ pagesearch.CorpusSource = (*CorpusSource)(nil)

// CorpusSource loads sections from a parsed-content JSON file.
// See pagesearch.DecodeSections for the accepted file shapes.
type CorpusSource struct {
	path string
}

// NewCorpusSource creates a CorpusSource that reads from path.
func NewCorpusSource(path string) *CorpusSource {
	return &CorpusSource{path: path}
}

// Load reads and decodes the corpus file. A missing file is ENOTFOUND, an
// unreadable file is EUNAVAILABLE, and malformed JSON is EINVALID, so
// callers can tell a load failure apart from an empty corpus.
func (s *CorpusSource) Load(ctx context.Context) ([]*pagesearch.Section, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus file %q not found", s.path)
		}
		return nil, pagesearch.Errorf(pagesearch.EUNAVAILABLE, "corpus file %q unavailable: %s", s.path, err)
	}
	defer f.Close()

	sections, err := pagesearch.DecodeSections(f)
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "corpus file %q: %s", s.path, err)
	}
	return sections, nil
}
