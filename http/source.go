package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/pagesearch"
)

// Ensure CorpusSource implements pagesearch.CorpusSource at compile time.
var _ pagesearch.CorpusSource = (*CorpusSource)(nil)

// CorpusSource loads sections from a parsed-content JSON endpoint.
// See pagesearch.DecodeSections for the accepted document shapes.
type CorpusSource struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// SourceOption configures a CorpusSource.
type SourceOption func(*CorpusSource)

// WithSourceTimeout sets the timeout for corpus requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithSourceTimeout(d time.Duration) SourceOption {
	return func(s *CorpusSource) {
		s.timeout = d
	}
}

// NewCorpusSource creates a CorpusSource that fetches from url.
func NewCorpusSource(url string, opts ...SourceOption) *CorpusSource {
	s := &CorpusSource{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Load fetches and decodes the corpus document. An unreachable server or a
// non-200 response is EUNAVAILABLE (404 is ENOTFOUND), and a malformed body
// is EINVALID, so callers can tell a load failure apart from an empty corpus.
func (s *CorpusSource) Load(ctx context.Context) ([]*pagesearch.Section, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "corpus URL %q: %s", s.url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EUNAVAILABLE, "corpus fetch failed: %s", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus not found at %s", s.url)
	case resp.StatusCode != http.StatusOK:
		return nil, pagesearch.Errorf(pagesearch.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, s.url)
	}

	sections, err := pagesearch.DecodeSections(resp.Body)
	if err != nil {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "corpus at %s: %s", s.url, err)
	}
	return sections, nil
}
