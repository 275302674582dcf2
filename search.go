package pagesearch

import (
	"html"
	"strings"
)

// DefaultSnippetLength is the nominal number of context bytes kept around
// the first occurrence of a query when extracting a snippet.
const DefaultSnippetLength = 200

// Highlight markers wrapped around each query occurrence in a snippet.
// Snippet text is otherwise HTML-escaped, so these are the only live
// markup a snippet contains.
const (
	MarkStart = "<mark>"
	MarkEnd   = "</mark>"
)

// SearchStatus describes the outcome of a search pass.
type SearchStatus string

// SearchStatus values.
const (
	// StatusMatches indicates at least one section matched the query.
	StatusMatches SearchStatus = "matches"

	// StatusEmptyQuery indicates the query was empty or whitespace-only.
	// Nothing was scanned.
	StatusEmptyQuery SearchStatus = "empty_query"

	// StatusNoMatches indicates a well-formed query that no section contains.
	StatusNoMatches SearchStatus = "no_matches"
)

// Match pairs a section with a highlighted snippet of its content.
// Matches are derived values, recomputed on every search and never stored.
type Match struct {
	Section *Section `json:"section"`
	Snippet string   `json:"snippet"`
}

// SearchResult is the complete outcome of one search pass. Matches appear
// in corpus order and is empty unless Status is StatusMatches.
type SearchResult struct {
	Status  SearchStatus `json:"status"`
	Matches []Match      `json:"matches,omitempty"`
}

// Searcher runs a query against a corpus of sections.
type Searcher interface {
	// Search scans the corpus in order and reports every section whose
	// content contains the query. Implementations must treat the query as
	// a literal string, never as a pattern, and must not mutate sections.
	Search(corpus []*Section, query string) *SearchResult
}

// Engine is the default Searcher: literal, case-insensitive substring
// matching with highlighted, word-aligned snippets. The zero value is
// ready to use.
type Engine struct {
	// SnippetLength overrides DefaultSnippetLength when positive.
	SnippetLength int
}

var _ Searcher = (*Engine)(nil)

// NewEngine returns an Engine with default settings.
func NewEngine() *Engine {
	return &Engine{}
}

// Search implements Searcher. The same corpus and query always produce
// the same result, and no string input can make it fail: all outcomes,
// including empty and unmatched queries, are reported through Status.
func (e *Engine) Search(corpus []*Section, query string) *SearchResult {
	window := e.SnippetLength
	if window <= 0 {
		window = DefaultSnippetLength
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return &SearchResult{Status: StatusEmptyQuery}
	}
	fq := foldText(q).text

	var matches []Match
	for _, section := range corpus {
		folded := foldText(section.Content)
		first := strings.Index(folded.text, fq)
		if first < 0 {
			continue
		}
		matches = append(matches, Match{
			Section: section,
			Snippet: snippet(section.Content, folded, fq, first, window),
		})
	}

	if len(matches) == 0 {
		return &SearchResult{Status: StatusNoMatches}
	}
	return &SearchResult{Status: StatusMatches, Matches: matches}
}

// Search runs query against corpus with the default engine.
func Search(corpus []*Section, query string) *SearchResult {
	return NewEngine().Search(corpus, query)
}

// snippet extracts a window of roughly `window` bytes of context around
// the first query occurrence, aligns the window edges to word boundaries
// where possible, and returns the HTML-escaped window text with every
// contained occurrence wrapped in highlight markers.
//
// The window is computed on the folded content: it nominally spans
// [first-window/2, first+len(fq)+window/2), clamped to the content. A
// start not at the content start advances past the next whitespace before
// the occurrence; an end not at the content end retracts to just before
// the last whitespace after it. When no such whitespace exists the
// clamped bound stays, so a snippet can begin or end mid-word only inside
// an oversized unbroken token or at a clamped content edge.
func snippet(content string, folded *foldedText, fq string, first, window int) string {
	matchEnd := first + len(fq)

	wStart := first - window/2
	if wStart < 0 {
		wStart = 0
	}
	wEnd := matchEnd + window/2
	if wEnd > len(folded.text) {
		wEnd = len(folded.text)
	}

	if wStart > 0 {
		if i := nextSpaceEnd(folded.text, wStart, first); i >= 0 {
			wStart = i
		}
	}
	if wEnd < len(folded.text) {
		if i := lastSpaceStart(folded.text, matchEnd, wEnd); i >= 0 {
			wEnd = i
		}
	}

	var b strings.Builder
	b.WriteString("...")

	cur := folded.back[wStart]
	for i := wStart; i < wEnd; {
		m := strings.Index(folded.text[i:wEnd], fq)
		if m < 0 {
			break
		}
		m += i

		hs, he := folded.back[m], folded.back[m+len(fq)]
		b.WriteString(html.EscapeString(content[cur:hs]))
		b.WriteString(MarkStart)
		b.WriteString(html.EscapeString(content[hs:he]))
		b.WriteString(MarkEnd)

		cur = he
		i = m + len(fq)
	}

	b.WriteString(html.EscapeString(content[cur:folded.back[wEnd]]))
	b.WriteString("...")
	return b.String()
}
