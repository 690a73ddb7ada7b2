package main

import (
	"fmt"

	"github.com/fwojciec/scrapedocs"
)

// Run executes the home command.
func (c *HomeCmd) Run(deps *Dependencies) error {
	url, err := deps.Scraper.DocHomeURL(deps.Ctx, c.Package)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapedocs.ErrorMessage(err))
		return err
	}
	if url == "" {
		err := scrapedocs.Errorf(scrapedocs.ENOTFOUND, "no documentation URL found for package %q", c.Package)
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapedocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, url)
	return nil
}
