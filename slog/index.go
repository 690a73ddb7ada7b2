package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scrapedocs"
)

var _ scrapedocs.PackageIndex = (*LoggingIndex)(nil)

// LoggingIndex wraps a PackageIndex with logging.
type LoggingIndex struct {
	next   scrapedocs.PackageIndex
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next scrapedocs.PackageIndex, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// DocHomeURL delegates to the wrapped index and logs the lookup.
func (ix *LoggingIndex) DocHomeURL(ctx context.Context, packageName string) (url string, err error) {
	defer func(begin time.Time) {
		ix.logger.Info("package lookup",
			"package", packageName,
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return ix.next.DocHomeURL(ctx, packageName)
}
