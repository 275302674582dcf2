package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/pagesearch"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	corpora, err := deps.Corpora.FindCorpora(deps.Ctx, pagesearch.CorpusFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	if len(corpora) == 0 {
		fmt.Fprintf(deps.Stderr, "error: corpus %q not found. Use 'pagesearch list' to see available corpora.\n", c.Name)
		return pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus %q not found", c.Name)
	}

	corpus := corpora[0]

	sections, err := deps.Sections.FindSections(deps.Ctx, pagesearch.SectionFilter{
		CorpusID: &corpus.ID,
		SortBy:   pagesearch.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: corpus %q has no sections\n", c.Name)
		return pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus %q has no sections", c.Name)
	}

	store := deps.NewSectionStore(c.Dir, corpus.Name)
	for _, section := range sections {
		if err := store.Save(deps.Ctx, section); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
			return err
		}
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d sections to %s\n", len(sections), filepath.Join(c.Dir, corpus.Name))
	return nil
}
