package mock

import (
	"context"

	"github.com/fwojciec/scrapedocs"
)

var _ scrapedocs.PackageIndex = (*PackageIndex)(nil)

// PackageIndex is a mock implementation of scrapedocs.PackageIndex.
type PackageIndex struct {
	DocHomeURLFn func(ctx context.Context, packageName string) (string, error)
}

func (ix *PackageIndex) DocHomeURL(ctx context.Context, packageName string) (string, error) {
	return ix.DocHomeURLFn(ctx, packageName)
}
