package main

import (
	"fmt"

	"github.com/fwojciec/pagesearch"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagesearch.Errorf(pagesearch.EINVALID, "use --force to confirm deletion")
	}

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
	if err := deps.Corpora.DeleteCorpus(deps.Ctx, corpus.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted corpus %q\n", corpus.Name)
	return nil
}
