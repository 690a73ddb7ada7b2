package scrapedocs

import "context"

// ReferenceClasses are the anchor classes that mark a documentation page's
// links to its own reference sections (Sphinx renders toctree entries as
// <a class="reference internal">).
var ReferenceClasses = []string{"reference", "internal"}

// LinkExtractor discovers links on a page.
type LinkExtractor interface {
	// ExtractLinks fetches pageURL and returns it followed by the absolute
	// URLs of every <a href> carrying all of the given classes, in
	// document order. A page that cannot be fetched yields no links and no
	// error, except for a 4xx answer which is returned as a *StatusError.
	ExtractLinks(ctx context.Context, pageURL string, classes []string) ([]string, error)
}
