package scrapedocs

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is the HTML of a page's content container.
	Convert(html string) (string, error)
}
