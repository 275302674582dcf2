package pagesearch

import (
	"context"
	"time"
)

// Corpus represents a named set of sections that is searched as a unit,
// typically one imported page or document.
type Corpus struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the corpus contains invalid fields.
func (c *Corpus) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "corpus name required")
	}
	if c.Source == "" {
		return Errorf(EINVALID, "corpus source required")
	}
	return nil
}

// CorpusService represents a service for managing corpora.
type CorpusService interface {
	// CreateCorpus creates a new corpus.
	CreateCorpus(ctx context.Context, corpus *Corpus) error

	// FindCorpusByID retrieves a corpus by ID.
	// Returns ENOTFOUND if corpus does not exist.
	FindCorpusByID(ctx context.Context, id string) (*Corpus, error)

	// FindCorpora retrieves corpora matching the filter.
	FindCorpora(ctx context.Context, filter CorpusFilter) ([]*Corpus, error)

	// UpdateCorpus updates an existing corpus.
	// Returns ENOTFOUND if corpus does not exist.
	UpdateCorpus(ctx context.Context, id string, upd CorpusUpdate) (*Corpus, error)

	// DeleteCorpus permanently removes a corpus and all associated sections.
	// Returns ENOTFOUND if corpus does not exist.
	DeleteCorpus(ctx context.Context, id string) error
}

// CorpusFilter represents a filter for FindCorpora.
type CorpusFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CorpusUpdate represents fields that can be updated on a corpus.
type CorpusUpdate struct {
	Name   *string `json:"name"`
	Source *string `json:"source"`
	Title  *string `json:"title"`
}
