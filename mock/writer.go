package mock

import (
	"context"

	"github.com/fwojciec/scrapedocs"
)

var _ scrapedocs.SectionWriter = (*SectionWriter)(nil)

// SectionWriter is a mock implementation of scrapedocs.SectionWriter.
type SectionWriter struct {
	WriteSectionFn func(ctx context.Context, docs *scrapedocs.Docs, position int) error
}

func (w *SectionWriter) WriteSection(ctx context.Context, docs *scrapedocs.Docs, position int) error {
	return w.WriteSectionFn(ctx, docs, position)
}
