package main

import (
	"fmt"

	"github.com/fwojciec/scrapedocs"
)

// Run executes the refs command.
func (c *RefsCmd) Run(deps *Dependencies) error {
	urls, err := deps.Scraper.DocReferenceURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapedocs.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
