package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseTitle returns the text of the page's first <title> element, or ""
// if there is none. The text is returned as is, without trimming.
func ParseTitle(htmlStr string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}
	return doc.Find("title").First().Text(), nil
}
