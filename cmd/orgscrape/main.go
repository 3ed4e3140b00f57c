package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/orgscrape"
	"github.com/fwojciec/orgscrape/batch"
	"github.com/fwojciec/orgscrape/gemini"
	"github.com/fwojciec/orgscrape/goquery"
	orghttp "github.com/fwojciec/orgscrape/http"
	"github.com/fwojciec/orgscrape/rod"
	orgslog "github.com/fwojciec/orgscrape/slog"
	"github.com/fwojciec/orgscrape/sqlite"
	orgyaml "github.com/fwojciec/orgscrape/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Real implementations are wired
	// for any left nil.
	Records    orgscrape.RecordService
	Fetcher    orgscrape.Fetcher
	News       orgscrape.NewsService
	Summarizer orgscrape.Summarizer
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("orgscrape"),
		kong.Description("Build a directory of social enterprises from their websites"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'orgscrape --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger, err := orgslog.NewLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	deps.Taxonomy = orgscrape.DefaultTaxonomy()
	if cli.Taxonomy != "" {
		if deps.Taxonomy, err = orgyaml.LoadTaxonomy(cli.Taxonomy); err != nil {
			return fmt.Errorf("failed to load taxonomy %q: %w", cli.Taxonomy, err)
		}
	}
	deps.Extractor = orgslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithTaxonomy(deps.Taxonomy)), logger)

	if needsDatabase(cmd) {
		if m.Records == nil {
			if cli.DB != "" {
				m.DBPath = cli.DB
			}
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set ORGSCRAPE_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.Records = sqlite.NewRecordService(m.DB)
		}
		deps.Records = orgslog.NewLoggingRecordService(m.Records, logger)
	}

	switch cmd {
	case "scrape":
		fetcher := m.Fetcher
		if fetcher == nil {
			if fetcher, err = newFetcher(cli.Scrape.Render); err != nil {
				fmt.Fprintln(stderr, "Hint: --render requires Chrome or Chromium to be installed")
				return fmt.Errorf("failed to start fetcher: %w", err)
			}
			defer fetcher.Close()
		}

		deps.Runner = &batch.Runner{
			Fetcher:     orgslog.NewLoggingFetcher(fetcher, logger),
			Extractor:   deps.Extractor,
			RateLimiter: batch.NewDomainLimiter(cli.Scrape.Rate),
			Concurrency: cli.Scrape.Concurrency,
			BatchSize:   cli.Scrape.BatchSize,
			OnRetry: func(url string, attempt int, err error) {
				logger.Warn("retrying fetch", "url", url, "attempt", attempt, "err", err)
			},
		}

	case "enrich":
		news := m.News
		if news == nil {
			news = orghttp.NewNewsService(nil, "")
		}
		deps.News = orgslog.NewLoggingNewsService(news, logger)

	case "report":
		deps.Summarizer = m.Summarizer
		if deps.Summarizer == nil && cli.Report.AI {
			if cli.Report.APIKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY not set, falling back to the basic report. Get an API key at https://aistudio.google.com/apikey")
				break
			}
			client, err := gemini.NewClient(ctx, cli.Report.APIKey)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Summarizer = gemini.NewSummarizer(client, cli.Report.Model)
		}
	}

	return kongCtx.Run(deps)
}

// needsDatabase reports whether cmd reads or writes the directory database.
func needsDatabase(cmd string) bool {
	switch cmd {
	case "classify", "taxonomy":
		return false
	}
	return true
}

func newFetcher(render bool) (orgscrape.Fetcher, error) {
	if render {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return orghttp.NewFetcher(), nil
}

func defaultDBPath() string {
	if path := os.Getenv("ORGSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "orgscrape.db"
	}
	dir := filepath.Join(home, ".orgscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "orgscrape.db")
}
