package mock

import (
	"context"

	"github.com/fwojciec/scrapedocs"
)

var _ scrapedocs.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of scrapedocs.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(ctx context.Context, pageURL string, classes []string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(ctx context.Context, pageURL string, classes []string) ([]string, error) {
	return e.ExtractLinksFn(ctx, pageURL, classes)
}

var _ scrapedocs.TitleFetcher = (*TitleFetcher)(nil)

// TitleFetcher is a mock implementation of scrapedocs.TitleFetcher.
type TitleFetcher struct {
	FetchTitlesFn func(ctx context.Context, links []string) (*scrapedocs.TitleResult, error)
}

func (f *TitleFetcher) FetchTitles(ctx context.Context, links []string) (*scrapedocs.TitleResult, error) {
	return f.FetchTitlesFn(ctx, links)
}
