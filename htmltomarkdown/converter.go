// Package htmltomarkdown renders documentation content containers as
// Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrapedocs"
)

var _ scrapedocs.Converter = (*Converter)(nil)

// chromeSelector matches the permalink and source-link decorations
// documentation generators add next to headings and signatures.
const chromeSelector = "a.headerlink, .viewcode-link, .viewcode-back, button.copybtn"

// Converter converts a content container's HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with CommonMark and table support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert strips permalink decorations from html and renders the rest as
// Markdown. Empty input is an EINVALID error.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", scrapedocs.Errorf(scrapedocs.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", scrapedocs.Errorf(scrapedocs.EINVALID, "parse HTML: %v", err)
	}
	doc.Find(chromeSelector).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}

	md, err := c.conv.ConvertString(body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
