package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scrapedocs"
	"github.com/fwojciec/scrapedocs/crawl"
	"github.com/fwojciec/scrapedocs/goquery"
	"github.com/fwojciec/scrapedocs/htmltomarkdown"
	schttp "github.com/fwojciec/scrapedocs/http"
	"github.com/fwojciec/scrapedocs/pypi"
	scslog "github.com/fwojciec/scrapedocs/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher scrapedocs.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("scrapedocs"),
		kong.Description("Scrape Python package documentation into plain text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(defaultVars),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scrapedocs --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Concurrency == 0 {
		return scrapedocs.Errorf(scrapedocs.EINVALID, "concurrency must not be zero")
	}
	if cli.Timeout <= 0 {
		return scrapedocs.Errorf(scrapedocs.EINVALID, "timeout must be positive")
	}

	deps.Logger = NewLogger(stderr, cli.Verbose)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = schttp.NewFetcher(schttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()
	logged := scslog.NewLoggingFetcher(fetcher, deps.Logger)

	extractor := goquery.NewExtractor()
	index := pypi.NewIndex(
		pypi.WithBaseURL(cli.IndexURL),
		pypi.WithHTTPClient(&http.Client{Timeout: cli.Timeout}),
	)

	deps.Scraper = &crawl.Scraper{
		Index: scslog.NewLoggingIndex(index, deps.Logger),
		Links: scslog.NewLoggingLinkExtractor(goquery.NewLinkExtractor(logged), deps.Logger),
		Titles: scslog.NewLoggingTitleFetcher(&crawl.TitleFetcher{
			Fetcher:     logged,
			Extractor:   extractor,
			Concurrency: cli.Concurrency,
		}, deps.Logger),
		Fetcher:   logged,
		Extractor: extractor,
		Converter: htmltomarkdown.NewConverter(),
	}

	return kongCtx.Run(deps)
}

// NewLogger returns the logger for request logging. Records are written to
// w at debug level when verbose is set and discarded otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(newCharmHandler(w))
}
