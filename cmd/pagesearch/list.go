package main

import (
	"fmt"

	"github.com/fwojciec/pagesearch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	corpora, err := deps.Corpora.FindCorpora(deps.Ctx, pagesearch.CorpusFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	if len(corpora) == 0 {
		fmt.Fprintln(deps.Stdout, "No corpora found. Use 'pagesearch import' to create one.")
		return nil
	}

	for _, corpus := range corpora {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", corpus.ID, corpus.Name, corpus.Source)
	}

	return nil
}
