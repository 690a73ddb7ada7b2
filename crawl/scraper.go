// Package crawl orchestrates documentation scraping. It resolves a
// package's documentation site, discovers its reference pages, fetches
// their titles concurrently and extracts the text of each page.
package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/scrapedocs"
)

// Scraper implements the public scraping operations on top of injected
// transport, index and parsing services.
type Scraper struct {
	Index     scrapedocs.PackageIndex
	Links     scrapedocs.LinkExtractor
	Titles    scrapedocs.TitleFetcher
	Fetcher   scrapedocs.Fetcher
	Extractor scrapedocs.Extractor
	Converter scrapedocs.Converter
}

// ProgressEvent reports progress while extracting sections.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Title     string
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting extraction progress.
type ProgressFunc func(event ProgressEvent)

// DocHomeURL returns the documentation home page of a package, or "" if
// the index does not know one.
func (s *Scraper) DocHomeURL(ctx context.Context, packageName string) (string, error) {
	return s.Index.DocHomeURL(ctx, packageName)
}

// DocReferenceURLs returns the reference links found on pageURL, or just
// pageURL when the page has none.
func (s *Scraper) DocReferenceURLs(ctx context.Context, pageURL string) ([]string, error) {
	links, err := s.Links.ExtractLinks(ctx, pageURL, scrapedocs.ReferenceClasses)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []string{pageURL}, nil
	}
	return links, nil
}

// SectionTitles discovers the reference links on pageURL and fetches the
// title of each. An unreachable page yields an empty result.
func (s *Scraper) SectionTitles(ctx context.Context, pageURL string) (*scrapedocs.TitleResult, error) {
	links, err := s.Links.ExtractLinks(ctx, pageURL, scrapedocs.ReferenceClasses)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return &scrapedocs.TitleResult{}, nil
	}
	return s.Titles.FetchTitles(ctx, links)
}

// ExtractPage fetches link and returns the cleaned text of its main
// content. A page without a content container yields "".
// A 4xx answer is returned as is; any other fetch failure is returned as
// an EUNAVAILABLE error.
func (s *Scraper) ExtractPage(ctx context.Context, link string) (string, error) {
	html, err := s.fetch(ctx, link)
	if err != nil {
		return "", err
	}

	text, err := s.Extractor.ExtractText(html)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", link, err)
	}

	return scrapedocs.CleanPageText(text), nil
}

// ExtractPageMarkdown fetches link and converts its main content container
// to Markdown. A page without a content container yields "".
func (s *Scraper) ExtractPageMarkdown(ctx context.Context, link string) (string, error) {
	if s.Converter == nil {
		return "", scrapedocs.Errorf(scrapedocs.EINVALID, "no markdown converter configured")
	}

	html, err := s.fetch(ctx, link)
	if err != nil {
		return "", err
	}

	content, err := s.Extractor.ExtractContentHTML(html)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", link, err)
	}
	if content == "" {
		return "", nil
	}

	return s.Converter.Convert(content)
}

func (s *Scraper) fetch(ctx context.Context, link string) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, link)
	if err != nil {
		if scrapedocs.IsClientError(err) {
			return "", err
		}
		return "", scrapedocs.Errorf(scrapedocs.EUNAVAILABLE, "fetch %s: %v", link, err)
	}
	return html, nil
}

// ExtractDocs extracts the text of every section discovered from pageURL.
// Sections keep the order in which their titles were discovered. A page
// that cannot be fetched becomes a section with Err set; it never stops
// the others. The progress callback, if provided, receives events as
// extraction proceeds.
func (s *Scraper) ExtractDocs(ctx context.Context, pageURL string, progress ProgressFunc) (*scrapedocs.Docs, error) {
	titles, err := s.SectionTitles(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("section titles: %w", err)
	}

	total := len(titles.Titles)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	docs := &scrapedocs.Docs{
		PackageURL:    pageURL,
		Sections:      make([]scrapedocs.Section, 0, total),
		TitleFailures: titles.Failures,
	}

	for i, rec := range titles.Titles {
		text, err := s.ExtractPage(ctx, rec.Link)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		docs.Sections = append(docs.Sections, scrapedocs.Section{
			Title: rec.Title,
			URL:   rec.Link,
			Text:  text,
			Err:   err,
		})

		if progress != nil {
			typ := ProgressCompleted
			if err != nil {
				typ = ProgressFailed
			}
			progress(ProgressEvent{
				Type:      typ,
				Completed: i + 1,
				Total:     total,
				Title:     rec.Title,
				URL:       rec.Link,
				Error:     err,
			})
		}
	}

	docs.ExtractedAt = time.Now().UTC()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return docs, nil
}

// ScrapePackage resolves a package's documentation home page and extracts
// all of its sections. Returns ENOTFOUND when the index lists no
// documentation or homepage URL for the package.
func (s *Scraper) ScrapePackage(ctx context.Context, packageName string, progress ProgressFunc) (*scrapedocs.Docs, error) {
	home, err := s.DocHomeURL(ctx, packageName)
	if err != nil {
		return nil, fmt.Errorf("package index: %w", err)
	}
	if home == "" {
		return nil, scrapedocs.Errorf(scrapedocs.ENOTFOUND, "no documentation URL found for package %q", packageName)
	}
	return s.ExtractDocs(ctx, home, progress)
}
