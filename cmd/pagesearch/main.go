package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesearch"
	"github.com/fwojciec/pagesearch/fs"
	"github.com/fwojciec/pagesearch/gemini"
	"github.com/fwojciec/pagesearch/goquery"
	"github.com/fwojciec/pagesearch/htmltomarkdown"
	pshttp "github.com/fwojciec/pagesearch/http"
	psslog "github.com/fwojciec/pagesearch/slog"
	"github.com/fwojciec/pagesearch/sqlite"
	"github.com/fwojciec/pagesearch/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CorpusService  pagesearch.CorpusService
	SectionService pagesearch.SectionService
	MessageService pagesearch.MessageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesearch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGESEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CorpusService = sqlite.NewCorpusService(m.DB)
	m.SectionService = sqlite.NewSectionService(m.DB)
	m.MessageService = sqlite.NewMessageService(m.DB)
	deps.DB = m.DB
	deps.Corpora = m.CorpusService
	deps.Sections = m.SectionService
	deps.Messages = m.MessageService
	deps.Searcher = pagesearch.NewEngine()
	deps.NewSectionStore = func(dir, name string) pagesearch.SectionStore {
		return fs.NewSectionStore(dir, name)
	}

	// Wire command-specific dependencies based on command
	if cmd == "import" {
		deps.Fetcher = pshttp.NewFetcher()
		if cli.Import.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			deps.Fetcher = psslog.NewLoggingFetcher(deps.Fetcher, logger)
		}
		defer deps.Fetcher.Close()

		deps.Extractor = goquery.NewExtractor()
		deps.Fallback = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()

		// Token counts are informational; import proceeds without them.
		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			fmt.Fprintf(stderr, "warning: token counts unavailable: %v\n", err)
		} else {
			deps.TokenCounter = tokenCounter
		}
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, m.SectionService)
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting during import.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("PAGESEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesearch.db"
	}
	dir := filepath.Join(home, ".pagesearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagesearch.db")
}
