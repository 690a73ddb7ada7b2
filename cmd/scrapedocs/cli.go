package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/scrapedocs/crawl"
	"github.com/fwojciec/scrapedocs/pypi"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper *crawl.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" help:"Log every request to stderr"`
	Timeout     time.Duration `short:"t" default:"10s" env:"SCRAPEDOCS_TIMEOUT" help:"Timeout per request"`
	Concurrency int           `short:"c" default:"10" env:"SCRAPEDOCS_CONCURRENCY" help:"Concurrent title fetch limit (negative for unbounded)"`
	IndexURL    string        `name:"index-url" default:"${index_url}" env:"SCRAPEDOCS_INDEX_URL" help:"Package index JSON API base URL"`

	Home   HomeCmd   `cmd:"" help:"Print the documentation home page of a package"`
	Refs   RefsCmd   `cmd:"" help:"List the reference pages linked from a documentation page"`
	Titles TitlesCmd `cmd:"" help:"List the section titles of a documentation site"`
	Page   PageCmd   `cmd:"" help:"Print the cleaned text of one documentation page"`
	Docs   DocsCmd   `cmd:"" help:"Extract every section of a package's documentation"`
}

// HomeCmd is the "home" subcommand.
type HomeCmd struct {
	Package string `arg:"" help:"Python package name"`
}

// RefsCmd is the "refs" subcommand.
type RefsCmd struct {
	URL string `arg:"" help:"Documentation page URL"`
}

// TitlesCmd is the "titles" subcommand.
type TitlesCmd struct {
	URL  string `arg:"" help:"Documentation home page URL"`
	JSON bool   `help:"Print titles as JSON"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Link     string `arg:"" help:"Documentation page URL"`
	Markdown bool   `short:"m" help:"Render the content as Markdown instead of plain text"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Target string `arg:"" help:"Python package name or documentation URL"`
	Out    string `short:"o" type:"path" help:"Write sections as files into this directory"`
	DB     string `name:"db" type:"path" help:"Export sections to this SQLite database"`
	JSON   bool   `help:"Print sections as JSON"`
}

var defaultVars = map[string]string{
	"index_url": pypi.DefaultBaseURL,
}
