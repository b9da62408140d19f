// Command docrawl scrapes a multi-page HTML manual into a retrieval-ready
// corpus: one JSON record per page plus a JSONL index of bounded-size
// markdown chunks with stable, content-addressed IDs.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sennevb/docrawl"
	"github.com/sennevb/docrawl/crawl"
	"github.com/sennevb/docrawl/fs"
	"github.com/sennevb/docrawl/goquery"
	dchttp "github.com/sennevb/docrawl/http"
	dcslog "github.com/sennevb/docrawl/slog"
	"github.com/sennevb/docrawl/sqlite"
)

// DefaultRoot is the manual this tool was originally written for.
const DefaultRoot = "https://learn.omacom.io/2/the-omarchy-manual/"

func main() {
	m := NewMain()
	if err := m.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root     string        `help:"Root URL of the manual to crawl." default:"${defaultRoot}"`
	Out      string        `short:"o" help:"Output directory for the corpus." default:"corpus"`
	Wait     time.Duration `help:"Fixed delay before each request." default:"1s"`
	MaxPages int           `help:"Safety cap on the number of pages fetched." default:"1000"`
	MaxChars int           `help:"Chunk size ceiling in characters." default:"2500"`
	MinWords int           `help:"Sections below this word count are merged with neighbors." default:"30"`
	Timeout  time.Duration `help:"Per-request fetch timeout." default:"25s"`
	DB       string        `help:"Optional SQLite database to mirror the corpus into." type:"path"`
	Verbose  bool          `short:"v" help:"Enable debug logging."`
}

// Main represents the program entrypoint, parameterized over its streams so
// tests can run it end to end.
type Main struct{}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the program with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docrawl"),
		kong.Description("Scrape an HTML manual into page records and retrieval-ready markdown chunks."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"defaultRoot": DefaultRoot},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Sinks are created up front; failing to open an output is fatal,
	// unlike per-page errors which the crawl loop contains.
	pages, err := fs.NewPageStore(filepath.Join(cli.Out, "pages"))
	if err != nil {
		return fmt.Errorf("open page store: %w", err)
	}
	index, err := fs.NewChunkIndex(filepath.Join(cli.Out, "index.jsonl"))
	if err != nil {
		return fmt.Errorf("open chunk index: %w", err)
	}
	defer index.Close()

	pageSink := docrawl.PageStore(pages)
	chunkSink := docrawl.ChunkWriter(index)

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		store := sqlite.NewStore(db)
		pageSink = docrawl.MultiPageStore{pages, store}
		chunkSink = docrawl.MultiChunkWriter{index, store}
	}

	fetcher := dcslog.NewLoggingFetcher(dchttp.NewFetcher(dchttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Links:     goquery.NewLinkExtractor(),
		Pages:     pageSink,
		Chunks:    chunkSink,
		Limiter:   crawl.NewDelayLimiter(cli.Wait),
		Logger:    logger,
		MaxPages:  cli.MaxPages,
		ChunkOpts: docrawl.ChunkOptions{MaxChars: cli.MaxChars, MinWords: cli.MinWords},
	}

	fmt.Fprintf(stdout, "Root: %s\nOut:  %s\n", cli.Root, cli.Out)

	result, err := crawler.Run(ctx, cli.Root)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, crawl.FormatSummary(result, pages.Dir(), index.Path()))
	return nil
}
