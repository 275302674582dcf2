package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagesearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagesearch.SectionService = (*SectionService)(nil)

// SectionService implements pagesearch.SectionService using SQLite.
type SectionService struct {
	db *DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *DB) *SectionService {
	return &SectionService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateSection creates a new section. The ID, content hash, and import
// timestamp are assigned here; a missing anchor is derived from the title.
func (s *SectionService) CreateSection(ctx context.Context, section *pagesearch.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}

	section.ID = uuid.New().String()
	section.ImportedAt = time.Now().UTC()
	section.ContentHash = hashContent(section.Content)
	if section.Anchor == "" {
		section.Anchor = pagesearch.Anchorize(section.Title)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (id, corpus_id, anchor, title, content, content_hash, position, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, section.ID, section.CorpusID, section.Anchor, section.Title, section.Content,
		section.ContentHash, section.Position, section.ImportedAt.Format(time.RFC3339))

	return err
}

// FindSectionByID retrieves a section by ID.
func (s *SectionService) FindSectionByID(ctx context.Context, id string) (*pagesearch.Section, error) {
	var section pagesearch.Section
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, corpus_id, anchor, title, content, content_hash, position, imported_at
		FROM sections
		WHERE id = ?
	`, id).Scan(&section.ID, &section.CorpusID, &section.Anchor, &section.Title,
		&section.Content, &section.ContentHash, &section.Position, &importedAt)

	if err == sql.ErrNoRows {
		return nil, pagesearch.Errorf(pagesearch.ENOTFOUND, "section not found")
	}
	if err != nil {
		return nil, err
	}

	if section.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
		return nil, err
	}

	return &section, nil
}

// FindSections retrieves sections matching the filter.
func (s *SectionService) FindSections(ctx context.Context, filter pagesearch.SectionFilter) ([]*pagesearch.Section, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, corpus_id, anchor, title, content, content_hash, position, imported_at FROM sections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CorpusID != nil {
		query.WriteString(" AND corpus_id = ?")
		args = append(args, *filter.CorpusID)
	}
	if filter.Anchor != nil {
		query.WriteString(" AND anchor = ?")
		args = append(args, *filter.Anchor)
	}

	switch filter.SortBy {
	case pagesearch.SortByImportedAt:
		query.WriteString(" ORDER BY imported_at DESC")
	default:
		query.WriteString(" ORDER BY position ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*pagesearch.Section
	for rows.Next() {
		var section pagesearch.Section
		var importedAt string

		if err := rows.Scan(&section.ID, &section.CorpusID, &section.Anchor, &section.Title,
			&section.Content, &section.ContentHash, &section.Position, &importedAt); err != nil {
			return nil, err
		}

		if section.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
			return nil, err
		}

		sections = append(sections, &section)
	}

	return sections, rows.Err()
}

// DeleteSection permanently removes a section.
func (s *SectionService) DeleteSection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagesearch.Errorf(pagesearch.ENOTFOUND, "section not found")
	}

	return nil
}

// DeleteSectionsByCorpus removes all sections for a corpus.
func (s *SectionService) DeleteSectionsByCorpus(ctx context.Context, corpusID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE corpus_id = ?", corpusID)
	return err
}
