package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scrapedocs"
)

var _ scrapedocs.LinkExtractor = (*LoggingLinkExtractor)(nil)

// LoggingLinkExtractor wraps a LinkExtractor with logging.
type LoggingLinkExtractor struct {
	next   scrapedocs.LinkExtractor
	logger *slog.Logger
}

// NewLoggingLinkExtractor creates a new LoggingLinkExtractor.
func NewLoggingLinkExtractor(next scrapedocs.LinkExtractor, logger *slog.Logger) *LoggingLinkExtractor {
	return &LoggingLinkExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the discovery.
func (e *LoggingLinkExtractor) ExtractLinks(ctx context.Context, pageURL string, classes []string) (links []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("link discovery",
			"url", pageURL,
			"classes", classes,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(ctx, pageURL, classes)
}

var _ scrapedocs.TitleFetcher = (*LoggingTitleFetcher)(nil)

// LoggingTitleFetcher wraps a TitleFetcher with logging. Each failed link
// is logged at warn level.
type LoggingTitleFetcher struct {
	next   scrapedocs.TitleFetcher
	logger *slog.Logger
}

// NewLoggingTitleFetcher creates a new LoggingTitleFetcher.
func NewLoggingTitleFetcher(next scrapedocs.TitleFetcher, logger *slog.Logger) *LoggingTitleFetcher {
	return &LoggingTitleFetcher{next: next, logger: logger}
}

// FetchTitles delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingTitleFetcher) FetchTitles(ctx context.Context, links []string) (result *scrapedocs.TitleResult, err error) {
	defer func(begin time.Time) {
		var titles, failed int
		if result != nil {
			titles = len(result.Titles)
			failed = result.Failed()
			for _, fail := range result.Failures {
				f.logger.Warn("title fetch failed", "url", fail.Link, "err", fail.Err)
			}
		}
		f.logger.Info("fetch titles",
			"links", len(links),
			"titles", titles,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchTitles(ctx, links)
}
