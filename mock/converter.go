package mock

import "github.com/fwojciec/scrapedocs"

var _ scrapedocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of scrapedocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
