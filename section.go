package pagesearch

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// Section represents one searchable unit of a corpus: a titled block of
// plain-text content. Sections are immutable once loaded; search passes
// never modify them. Corpus order (Position) is presentation order.
type Section struct {
	ID          string    `json:"id"`
	CorpusID    string    `json:"corpusId"`
	Anchor      string    `json:"anchor"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	ImportedAt  time.Time `json:"importedAt"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.CorpusID == "" {
		return Errorf(EINVALID, "section corpus ID required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	return nil
}

// SectionService represents a service for managing stored sections.
type SectionService interface {
	// CreateSection creates a new section.
	CreateSection(ctx context.Context, section *Section) error

	// FindSectionByID retrieves a section by ID.
	// Returns ENOTFOUND if section does not exist.
	FindSectionByID(ctx context.Context, id string) (*Section, error)

	// FindSections retrieves sections matching the filter.
	FindSections(ctx context.Context, filter SectionFilter) ([]*Section, error)

	// DeleteSection permanently removes a section.
	// Returns ENOTFOUND if section does not exist.
	DeleteSection(ctx context.Context, id string) error

	// DeleteSectionsByCorpus removes all sections for a corpus.
	DeleteSectionsByCorpus(ctx context.Context, corpusID string) error
}

// SectionStore persists sections to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type SectionStore interface {
	Save(ctx context.Context, section *Section) error
	Commit() error
	Abort() error
}

// SortOrder represents the sort order for section queries.
type SortOrder string

// SortOrder constants for SectionFilter.
const (
	SortByPosition   SortOrder = "position"
	SortByImportedAt SortOrder = "imported_at"
)

// SectionFilter represents a filter for FindSections.
type SectionFilter struct {
	ID       *string `json:"id"`
	CorpusID *string `json:"corpusId"`
	Anchor   *string `json:"anchor"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// Anchorize creates a URL-safe anchor from a section title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Anchorize(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}
