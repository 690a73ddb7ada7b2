package crawl

import (
	"context"

	"github.com/fwojciec/scrapedocs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight title fetches.
const DefaultConcurrency = 10

var _ scrapedocs.TitleFetcher = (*TitleFetcher)(nil)

// TitleFetcher fetches page titles concurrently.
type TitleFetcher struct {
	Fetcher   scrapedocs.Fetcher
	Extractor scrapedocs.Extractor

	// Concurrency limits in-flight fetches. Zero means DefaultConcurrency,
	// a negative value means one goroutine per link.
	Concurrency int
}

// titleOutcome is the result of fetching one link.
type titleOutcome struct {
	link  string
	title string
	err   error
}

// FetchTitles fetches every link concurrently and returns one record per
// distinct title. A link that fails is recorded in Failures and does not
// affect the others. FetchTitles returns only after every fetch finished.
//
// Records are accumulated in completion order, so which link wins a
// duplicate title depends on which fetch finished first.
func (f *TitleFetcher) FetchTitles(ctx context.Context, links []string) (*scrapedocs.TitleResult, error) {
	concurrency := f.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}

	// Channel for collecting results
	resultCh := make(chan titleOutcome, len(links))

	// Tasks never return an error, so one failure cannot cancel siblings.
	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for _, link := range links {
			g.Go(func() error {
				resultCh <- f.fetchTitle(ctx, link)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &scrapedocs.TitleResult{}
	records := make([]scrapedocs.TitleRecord, 0, len(links))
	for outcome := range resultCh {
		if outcome.err != nil {
			result.Failures = append(result.Failures, scrapedocs.FetchFailure{
				Link: outcome.link,
				Err:  outcome.err,
			})
			continue
		}
		records = append(records, scrapedocs.TitleRecord{
			Title: outcome.title,
			Link:  outcome.link,
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Titles = scrapedocs.UniqueTitles(records)
	return result, nil
}

func (f *TitleFetcher) fetchTitle(ctx context.Context, link string) titleOutcome {
	html, err := f.Fetcher.Fetch(ctx, link)
	if err != nil {
		return titleOutcome{link: link, err: err}
	}

	title, err := f.Extractor.ExtractTitle(html)
	if err != nil {
		return titleOutcome{link: link, err: err}
	}

	return titleOutcome{link: link, title: title}
}
