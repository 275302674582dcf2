package main

import (
	"fmt"

	"github.com/fwojciec/pagesearch"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
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
		fmt.Fprintf(deps.Stderr, "error: corpus %q has no sections. To re-import, run 'pagesearch import %s <source> --force'.\n", c.Name, c.Name)
		return pagesearch.Errorf(pagesearch.ENOTFOUND, "corpus %q has no sections", c.Name)
	}

	if c.Full {
		// Print full formatted content (same as what ask sends to the LLM)
		fmt.Fprintln(deps.Stdout, pagesearch.FormatSections(sections))
		return nil
	}

	// Print summary listing
	fmt.Fprintf(deps.Stdout, "Sections for %s (%d total):\n\n", c.Name, len(sections))
	for i, section := range sections {
		title := section.Title
		if title == "" {
			title = section.Anchor
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     #%s\n", i+1, title, section.Anchor)
	}

	return nil
}
