package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pagesearch"
	"github.com/fwojciec/pagesearch/tui"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
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

	if c.Interactive {
		title := corpus.Title
		if title == "" {
			title = corpus.Name
		}
		return tui.Run(sections, deps.Searcher, title)
	}

	result := deps.Searcher.Search(sections, c.Query)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	switch result.Status {
	case pagesearch.StatusEmptyQuery:
		fmt.Fprintln(deps.Stdout, "Empty query. Pass a search term or use --interactive.")
	case pagesearch.StatusNoMatches:
		fmt.Fprintf(deps.Stdout, "No matches for %q in %s.\n", c.Query, corpus.Name)
	default:
		fmt.Fprintf(deps.Stdout, "Results for %q in %s (%d):\n\n", c.Query, corpus.Name, len(result.Matches))
		for i, match := range result.Matches {
			title := match.Section.Title
			if title == "" {
				title = match.Section.Anchor
			}
			fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n\n", i+1, title, tui.RenderSnippet(match.Snippet))
		}
	}

	return nil
}
