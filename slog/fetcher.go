// Package slog provides logging decorators for scrapedocs services using
// the standard library's structured logger.
package slog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/scrapedocs"
)

// Ensure LoggingFetcher implements scrapedocs.Fetcher.
var _ scrapedocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   scrapedocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next scrapedocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request. Failed
// requests also carry the error code and, for HTTP errors, the status.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		args := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if err != nil {
			args = append(args, "code", scrapedocs.ErrorCode(err))
			var se *scrapedocs.StatusError
			if errors.As(err, &se) {
				args = append(args, "status", se.StatusCode)
			}
		}
		f.logger.Info("fetch", args...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
