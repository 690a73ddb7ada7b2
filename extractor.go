package scrapedocs

// Extractor reads the parts of a documentation page the scraper needs.
// Parsing is permissive: missing structure yields empty results, not errors.
type Extractor interface {
	// ExtractTitle returns the text of the page's first <title>, or "".
	ExtractTitle(html string) (string, error)

	// ExtractText returns the raw text lines of the page's main content
	// container joined with newlines, or "" if the page has none.
	ExtractText(html string) (string, error)

	// ExtractContentHTML returns the HTML of the main content container,
	// or "" if the page has none.
	ExtractContentHTML(html string) (string, error)
}
