package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/scrapedocs"
	"github.com/fwojciec/scrapedocs/crawl"
	"github.com/fwojciec/scrapedocs/fs"
	"github.com/fwojciec/scrapedocs/sqlite"
)

// Run executes the docs command. The target is scraped as a URL when it
// has an http(s) scheme and looked up in the package index otherwise.
func (c *DocsCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Found %d sections\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", crawl.TruncateURL(event.URL, 60), scrapedocs.ErrorMessage(event.Error))
		}
	}

	var docs *scrapedocs.Docs
	var err error
	if isURL(c.Target) {
		docs, err = deps.Scraper.ExtractDocs(deps.Ctx, c.Target, progress)
	} else {
		docs, err = deps.Scraper.ScrapePackage(deps.Ctx, c.Target, progress)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapedocs.ErrorMessage(err))
		return err
	}

	for _, f := range docs.TitleFailures {
		fmt.Fprintf(deps.Stderr, "skip %s: %v\n", f.Link, f.Err)
	}

	if c.Out == "" && c.DB == "" {
		if err := c.print(deps, docs); err != nil {
			return err
		}
	} else if err := c.export(deps, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stderr, "Extracted %s\n", crawl.Summarize(docs))
	return nil
}

func (c *DocsCmd) print(deps *Dependencies, docs *scrapedocs.Docs) error {
	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs.Map())
	}

	for i := range docs.Sections {
		s := &docs.Sections[i]
		fmt.Fprintf(deps.Stdout, "## %s\n\n", s.Title)
		if s.Absent() {
			fmt.Fprintf(deps.Stdout, "(unavailable: %s)\n\n", scrapedocs.ErrorMessage(s.Err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\n\n", s.Text)
	}
	return nil
}

// export writes every section to the configured file and database sinks.
func (c *DocsCmd) export(deps *Dependencies, docs *scrapedocs.Docs) error {
	var writers []scrapedocs.SectionWriter

	var files *fs.Writer
	if c.Out != "" {
		out := filepath.Clean(c.Out)
		files = fs.NewWriter(filepath.Dir(out), filepath.Base(out))
		writers = append(writers, files)
	}

	var store *sqlite.SectionStore
	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("open database %q: %w", c.DB, err)
		}
		defer db.Close()
		store = sqlite.NewSectionStore(db)
		writers = append(writers, store)
	}

	for i := range docs.Sections {
		for _, w := range writers {
			if err := w.WriteSection(deps.Ctx, docs, i); err != nil {
				if files != nil {
					_ = files.Abort()
				}
				return fmt.Errorf("write section %q: %w", docs.Sections[i].Title, err)
			}
		}
	}

	if files != nil {
		if err := files.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", files.Dir(), err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", files.Dir())
	}
	if store != nil {
		if len(docs.Sections) == 0 {
			fmt.Fprintf(deps.Stdout, "No sections to export to %s\n", c.DB)
			return nil
		}
		return c.reportExport(deps, store, docs.PackageURL)
	}
	return nil
}

// reportExport reads the stored export back and prints what it holds.
func (c *DocsCmd) reportExport(deps *Dependencies, store *sqlite.SectionStore, packageURL string) error {
	export, err := store.LatestExport(deps.Ctx, packageURL)
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}
	sections, err := store.FindSections(deps.Ctx, sqlite.SectionFilter{ExportID: export.ID})
	if err != nil {
		return fmt.Errorf("read sections: %w", err)
	}

	var unavailable int
	for _, s := range sections {
		if s.Absent() {
			unavailable++
		}
	}
	fmt.Fprintf(deps.Stdout, "Exported %d sections (%d unavailable) to %s as %s\n",
		len(sections), unavailable, c.DB, export.ID)
	return nil
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
