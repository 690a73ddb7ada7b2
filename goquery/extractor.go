package goquery

import "github.com/fwojciec/scrapedocs"

// Ensure Extractor implements scrapedocs.Extractor at compile time.
var _ scrapedocs.Extractor = (*Extractor)(nil)

// Extractor implements scrapedocs.Extractor with the content marker rules
// of this package.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractTitle returns the page title.
func (e *Extractor) ExtractTitle(html string) (string, error) {
	return ParseTitle(html)
}

// ExtractText returns the text lines of the page's content container.
func (e *Extractor) ExtractText(html string) (string, error) {
	return PageText(html)
}

// ExtractContentHTML returns the HTML of the page's content container.
func (e *Extractor) ExtractContentHTML(html string) (string, error) {
	return ContentHTML(html)
}
