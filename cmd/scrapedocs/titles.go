package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/scrapedocs"
)

// Run executes the titles command. Titles are printed tab-separated from
// their links; links whose title could not be fetched go to stderr.
func (c *TitlesCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.SectionTitles(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapedocs.ErrorMessage(err))
		return err
	}

	for _, f := range result.Failures {
		fmt.Fprintf(deps.Stderr, "skip %s: %v\n", f.Link, f.Err)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		titles := result.Titles
		if titles == nil {
			titles = []scrapedocs.TitleRecord{}
		}
		return enc.Encode(titles)
	}

	for _, t := range result.Titles {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", t.Title, t.Link)
	}
	return nil
}
