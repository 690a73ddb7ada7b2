package main

import (
	"fmt"

	"github.com/fwojciec/scrapedocs"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	var text string
	var err error
	if c.Markdown {
		text, err = deps.Scraper.ExtractPageMarkdown(deps.Ctx, c.Link)
	} else {
		text, err = deps.Scraper.ExtractPage(deps.Ctx, c.Link)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapedocs.ErrorMessage(err))
		return err
	}

	if text == "" {
		fmt.Fprintln(deps.Stderr, "no content found")
		return nil
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
