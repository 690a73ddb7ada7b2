package goquery

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrapedocs"
)

var classNameRe = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*$`)

// ExtractLinksByClass returns the absolute URLs of every <a href> in html
// carrying all of the given classes, in document order. Relative hrefs are
// resolved against baseURL; absolute hrefs are kept unchanged.
func ExtractLinksByClass(htmlStr string, baseURL string, classes []string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, scrapedocs.Errorf(scrapedocs.EINVALID, "invalid base URL: %v", err)
	}

	selector, err := anchorSelector(classes)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, scrapedocs.Errorf(scrapedocs.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		links = append(links, resolved)
	})

	return links, nil
}

// anchorSelector builds "a.c1.c2[href]" from class names.
func anchorSelector(classes []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("a")
	for _, c := range classes {
		if !classNameRe.MatchString(c) {
			return "", scrapedocs.Errorf(scrapedocs.EINVALID, "invalid class name %q", c)
		}
		sb.WriteString(".")
		sb.WriteString(c)
	}
	sb.WriteString("[href]")
	return sb.String(), nil
}

// resolveURL resolves href against base. An href that already names a
// host is returned unchanged. Returns "" if href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.Host != "" {
		return href
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// Ensure LinkExtractor implements scrapedocs.LinkExtractor at compile time.
var _ scrapedocs.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers class-filtered links by fetching a page and
// parsing its anchors.
type LinkExtractor struct {
	fetcher scrapedocs.Fetcher
}

// NewLinkExtractor creates a LinkExtractor that fetches pages with fetcher.
func NewLinkExtractor(fetcher scrapedocs.Fetcher) *LinkExtractor {
	return &LinkExtractor{fetcher: fetcher}
}

// ExtractLinks fetches pageURL and returns it followed by every matching
// link on the page. Fetch failures yield no links; only a 4xx answer is
// returned as an error.
func (e *LinkExtractor) ExtractLinks(ctx context.Context, pageURL string, classes []string) ([]string, error) {
	html, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if scrapedocs.IsClientError(err) {
			return nil, err
		}
		return nil, nil
	}

	links, err := ExtractLinksByClass(html, pageURL, classes)
	if err != nil {
		return nil, err
	}
	return append([]string{pageURL}, links...), nil
}
