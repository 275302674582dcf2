package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesearch"
	psecho "github.com/fwojciec/pagesearch/echo"
	"github.com/fwojciec/pagesearch/fs"
	pshttp "github.com/fwojciec/pagesearch/http"
	psslog "github.com/fwojciec/pagesearch/slog"
	"github.com/fwojciec/pagesearch/sqlite"
	psyaml "github.com/fwojciec/pagesearch/yaml"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run starts the server and blocks until ctx is canceled.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageserve"),
		kong.Description("Serve a section corpus as a searchable web page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := psyaml.Load(cli.Config)
	if err != nil {
		return err
	}

	// Flags override the config file
	if cli.Addr != "" {
		cfg.Server.Addr = cli.Addr
	}
	if cli.Corpus != "" {
		cfg.Source = psyaml.SourceConfig{Type: "file", Path: cli.Corpus}
	}
	if cli.DB != "" {
		cfg.Source = psyaml.SourceConfig{Type: "sqlite", DB: cli.DB, Corpus: cli.Name}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var source pagesearch.CorpusSource
	var messages pagesearch.MessageService

	switch cfg.Source.Type {
	case "file":
		source = fs.NewCorpusSource(cfg.Source.Path)
	case "http":
		source = pshttp.NewCorpusSource(cfg.Source.URL)
	case "sqlite":
		db := sqlite.NewDB(cfg.Source.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cfg.Source.DB, err)
		}
		defer db.Close()
		source = sqlite.NewCorpusSource(db, cfg.Source.Corpus)
		messages = sqlite.NewMessageService(db)
	}

	searcher := &pagesearch.Engine{SnippetLength: cfg.Search.SnippetLength}

	opts := []psecho.Option{
		psecho.WithAddr(cfg.Server.Addr),
		psecho.WithTitle(cfg.Server.Title),
		psecho.WithLogger(logger),
		psecho.WithShutdownTimeout(time.Duration(cfg.Server.ShutdownSecs) * time.Second),
	}
	if cfg.Server.BaseURL != "" {
		opts = append(opts, psecho.WithBaseURL(cfg.Server.BaseURL))
	}
	if cfg.Server.RateLimit > 0 {
		opts = append(opts, psecho.WithRateLimit(float64(cfg.Server.RateLimit), cfg.Server.RateBurst))
	}
	if messages != nil {
		opts = append(opts, psecho.WithMessageService(messages))
	}

	srv := psecho.NewServer(
		psslog.NewLoggingCorpusSource(source, logger),
		psslog.NewLoggingSearcher(searcher, logger),
		opts...,
	)

	logger.Info("serving corpus", "source", cfg.Source.Type)
	return srv.Run(ctx)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" default:"pageserve.yml" help:"Path to the configuration file"`
	Addr   string `help:"Listen address (overrides the config file)"`
	Corpus string `help:"Parsed-content JSON file to serve (overrides the config file)"`
	DB     string `help:"SQLite database to serve from (overrides the config file)"`
	Name   string `help:"Corpus name when serving from a database"`
}
