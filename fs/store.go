package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagesearch"
)

// Ensure SectionStore implements pagesearch.SectionStore at compile time.
var _ pagesearch.SectionStore = (*SectionStore)(nil)

// SectionStore implements pagesearch.SectionStore with atomic update semantics.
// Sections are saved to a temporary directory, then moved atomically on Commit.
type SectionStore struct {
	baseDir string
	name    string
}

// NewSectionStore creates a new SectionStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSectionStore(baseDir, name string) *SectionStore {
	return &SectionStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SectionStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SectionStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *SectionStore) Save(ctx context.Context, section *pagesearch.Section) error {
	fullPath := filepath.Join(s.tempDir(), SectionPath(section))

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content := FormatSectionFile(section)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

func (s *SectionStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *SectionStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// SectionPath returns the file name for an exported section.
// The position prefix keeps a directory listing in corpus order, and the
// anchor is re-normalized so the result is always a safe flat file name.
// Example: position 3, anchor "resumen-ejecutivo" → 03-resumen-ejecutivo.md
func SectionPath(section *pagesearch.Section) string {
	anchor := pagesearch.Anchorize(section.Anchor)
	if anchor == "" {
		anchor = pagesearch.Anchorize(section.Title)
	}
	if anchor == "" {
		anchor = "section"
	}
	return fmt.Sprintf("%02d-%s.md", section.Position, anchor)
}

// FormatSectionFile formats a section with YAML frontmatter.
func FormatSectionFile(section *pagesearch.Section) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(section.Title)
	b.WriteString("\nanchor: ")
	b.WriteString(section.Anchor)
	b.WriteString("\nposition: ")
	fmt.Fprintf(&b, "%d", section.Position)
	if !section.ImportedAt.IsZero() {
		b.WriteString("\nimported: ")
		b.WriteString(section.ImportedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(section.Content)
	return b.String()
}
