package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagesearch"
	"github.com/fwojciec/pagesearch/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	// Force mode: delete existing corpus first
	if c.Force {
		existing, err := deps.Corpora.FindCorpora(deps.Ctx, pagesearch.CorpusFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Corpora.DeleteCorpus(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
				return err
			}
		}
	}

	// Load every source before touching the database, so a bad source
	// leaves no half-imported corpus behind. Results are indexed by
	// argument position: source order is corpus order.
	results := make([][]*pagesearch.Section, len(c.Sources))

	limit := c.Concurrency
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(limit)
	for i, source := range c.Sources {
		g.Go(func() error {
			sections, err := loadSource(ctx, deps, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			results[i] = sections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	corpus := &pagesearch.Corpus{
		Name:   c.Name,
		Source: strings.Join(c.Sources, ", "),
		Title:  c.Title,
	}
	if err := deps.Corpora.CreateCorpus(deps.Ctx, corpus); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported corpus %q (%s)\n", c.Name, corpus.ID)

	var position, bytes int
	var contents []string
	for _, sections := range results {
		for _, section := range sections {
			section.CorpusID = corpus.ID
			section.Position = position
			if section.Title == "" {
				section.Title = section.Anchor
			}
			if err := deps.Sections.CreateSection(deps.Ctx, section); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
				return err
			}
			position++
			bytes += len(section.Content)
			contents = append(contents, section.Content)
		}
	}

	if deps.TokenCounter != nil {
		tokens, err := deps.TokenCounter.CountTokens(deps.Ctx, contents...)
		if err == nil {
			fmt.Fprintf(deps.Stdout, "  Saved %d sections (%s, %s)\n",
				position, pagesearch.FormatBytes(bytes), pagesearch.FormatTokens(tokens))
			return nil
		}
	}
	fmt.Fprintf(deps.Stdout, "  Saved %d sections (%s)\n", position, pagesearch.FormatBytes(bytes))

	return nil
}

// loadSource retrieves one source and returns its sections. URLs are
// fetched and sectioned, local HTML files are read and sectioned, and
// anything else is treated as a parsed-content JSON file.
func loadSource(ctx context.Context, deps *Dependencies, source string) ([]*pagesearch.Section, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		html, err := deps.Fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		return extractSections(deps, html)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".html", ".htm":
		data, err := os.ReadFile(source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, pagesearch.Errorf(pagesearch.ENOTFOUND, "page file %q not found", source)
			}
			return nil, pagesearch.Errorf(pagesearch.EUNAVAILABLE, "page file %q unavailable: %s", source, err)
		}
		return extractSections(deps, string(data))
	}

	return fs.NewCorpusSource(source).Load(ctx)
}

// extractSections splits page HTML into sections and converts each to
// Markdown. When the structural extractor finds no usable content the
// generic fallback gets a try before giving up.
func extractSections(deps *Dependencies, html string) ([]*pagesearch.Section, error) {
	extracted, err := deps.Extractor.Extract(html)
	if err != nil && deps.Fallback != nil && pagesearch.ErrorCode(err) == pagesearch.EINVALID {
		extracted, err = deps.Fallback.Extract(html)
	}
	if err != nil {
		return nil, err
	}

	sections := make([]*pagesearch.Section, 0, len(extracted))
	for _, ex := range extracted {
		content := ex.ContentHTML
		if deps.Converter != nil {
			if content, err = deps.Converter.Convert(ex.ContentHTML); err != nil {
				return nil, err
			}
		}
		sections = append(sections, &pagesearch.Section{
			Anchor:  ex.Anchor,
			Title:   ex.Title,
			Content: content,
		})
	}
	return sections, nil
}
