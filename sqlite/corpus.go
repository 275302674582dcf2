package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/pagesearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagesearch.CorpusService = (*CorpusService)(nil)

// CorpusService implements pagesearch.CorpusService using SQLite.
type CorpusService struct {
	db *DB
}

// NewCorpusService creates a new CorpusService.
func NewCorpusService(db *DB) *CorpusService {
	return &CorpusService{db: db}
}

// CreateCorpus creates a new corpus.
func (s *CorpusService) CreateCorpus(ctx context.Context, corpus *pagesearch.Corpus) error {
	if err := corpus.Validate(); err != nil {
		return err
	}

	corpus.ID = uuid.New().String()
	now := time.Now().UTC()
	corpus.CreatedAt = now
	corpus.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO corpora (id, name, source, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, corpus.ID, corpus.Name, corpus.Source, corpus.Title,
		corpus.CreatedAt.Format(time.RFC3339), corpus.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindCorpusByID retrieves a corpus by ID.
func (s *CorpusService) FindCorpusByID(ctx context.Context, id string) (*pagesearch.Corpus, error) {
	var corpus pagesearch.Corpus
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source, title, created_at, updated_at
		FROM corpora
		WHERE id = ?
	`, id).Scan(&corpus.ID, &corpus.Name, &corpus.Source, &corpus.Title, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus not found")
	}
	if err != nil {
		return nil, err
	}

	if corpus.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if corpus.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &corpus, nil
}

// FindCorpora retrieves corpora matching the filter.
func (s *CorpusService) FindCorpora(ctx context.Context, filter pagesearch.CorpusFilter) ([]*pagesearch.Corpus, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source, title, created_at, updated_at FROM corpora WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var corpora []*pagesearch.Corpus
	for rows.Next() {
		var corpus pagesearch.Corpus
		var createdAt, updatedAt string

		if err := rows.Scan(&corpus.ID, &corpus.Name, &corpus.Source, &corpus.Title,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if corpus.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if corpus.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		corpora = append(corpora, &corpus)
	}

	return corpora, rows.Err()
}

// UpdateCorpus updates an existing corpus.
func (s *CorpusService) UpdateCorpus(ctx context.Context, id string, upd pagesearch.CorpusUpdate) (*pagesearch.Corpus, error) {
	// First check if corpus exists
	corpus, err := s.FindCorpusByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Name != nil {
		corpus.Name = *upd.Name
	}
	if upd.Source != nil {
		corpus.Source = *upd.Source
	}
	if upd.Title != nil {
		corpus.Title = *upd.Title
	}

	// Validate before persisting
	if err := corpus.Validate(); err != nil {
		return nil, err
	}

	corpus.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE corpora
		SET name = ?, source = ?, title = ?, updated_at = ?
		WHERE id = ?
	`, corpus.Name, corpus.Source, corpus.Title, corpus.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return corpus, nil
}

// DeleteCorpus permanently removes a corpus.
func (s *CorpusService) DeleteCorpus(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM corpora WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus not found")
	}

	return nil
}
