package mock

import "github.com/fwojciec/scrapedocs"

var _ scrapedocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scrapedocs.Extractor.
type Extractor struct {
	ExtractTitleFn       func(html string) (string, error)
	ExtractTextFn        func(html string) (string, error)
	ExtractContentHTMLFn func(html string) (string, error)
}

func (e *Extractor) ExtractTitle(html string) (string, error) {
	return e.ExtractTitleFn(html)
}

func (e *Extractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

func (e *Extractor) ExtractContentHTML(html string) (string, error) {
	return e.ExtractContentHTMLFn(html)
}
