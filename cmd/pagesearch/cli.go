package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagesearch"
	"github.com/fwojciec/pagesearch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB

	Corpora  pagesearch.CorpusService
	Sections pagesearch.SectionService
	Messages pagesearch.MessageService
	Searcher pagesearch.Searcher

	// Import pipeline. Fetcher retrieves remote pages, Extractor splits
	// them into sections (Fallback is tried when Extractor finds no
	// usable content), and Converter rewrites section HTML as Markdown.
	Fetcher      pagesearch.Fetcher
	Extractor    pagesearch.Extractor
	Fallback     pagesearch.Extractor
	Converter    pagesearch.Converter
	TokenCounter pagesearch.TokenCounter

	Asker pagesearch.Asker

	// NewSectionStore opens an export target for a corpus.
	NewSectionStore func(dir, name string) pagesearch.SectionStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Import   ImportCmd   `cmd:"" help:"Import a corpus from page URLs, HTML files, or parsed-content JSON"`
	List     ListCmd     `cmd:"" help:"List all stored corpora"`
	Sections SectionsCmd `cmd:"" help:"List sections of a corpus"`
	Search   SearchCmd   `cmd:"" help:"Search a corpus for a term"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about a corpus"`
	Export   ExportCmd   `cmd:"" help:"Export a corpus as Markdown files"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a corpus and its sections"`
	Messages MessagesCmd `cmd:"" help:"List stored contact messages"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name        string   `arg:"" help:"Corpus name"`
	Sources     []string `arg:"" help:"Page URLs, HTML files, or parsed-content JSON files"`
	Title       string   `help:"Corpus display title"`
	Force       bool     `short:"f" help:"Delete existing corpus first"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent source load limit"`
	Verbose     bool     `short:"v" help:"Log fetches to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Name string `arg:"" help:"Corpus name"`
	Full bool   `help:"Show full section content"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name        string `arg:"" help:"Corpus name"`
	Query       string `arg:"" optional:"" help:"Search term"`
	JSON        bool   `help:"Print the raw search result as JSON"`
	Interactive bool   `short:"i" help:"Open an interactive search session"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Name     string `arg:"" help:"Corpus name"`
	Question string `arg:"" help:"Question to ask about the corpus"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Corpus name"`
	Dir  string `short:"o" default:"." help:"Output directory"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Corpus name"`
	Force bool   `help:"Confirm deletion"`
}

// MessagesCmd is the "messages" subcommand.
type MessagesCmd struct {
	Email string `help:"Only show messages from this address"`
	Limit int    `help:"Maximum number of messages to show"`
}
