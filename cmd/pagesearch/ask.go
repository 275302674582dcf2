package main

import (
	"fmt"

	"github.com/fwojciec/pagesearch"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
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

	answer, err := deps.Asker.Ask(deps.Ctx, corpus.ID, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
