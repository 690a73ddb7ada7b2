package scrapedocs

import "context"

// TitleRecord pairs a page title with the absolute link it was read from.
// The title is empty when the page has no <title>.
type TitleRecord struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// FetchFailure records a link whose title could not be fetched.
type FetchFailure struct {
	Link string
	Err  error
}

// TitleResult holds the outcome of a batch title fetch.
type TitleResult struct {
	// Titles holds one record per distinct title, first-seen link wins.
	Titles []TitleRecord

	// Failures lists every link that could not be fetched. Failed links
	// are excluded from Titles and never abort the batch.
	Failures []FetchFailure
}

// Failed returns the number of links that could not be fetched.
func (r *TitleResult) Failed() int {
	return len(r.Failures)
}

// TitleFetcher fetches the titles of many pages concurrently.
type TitleFetcher interface {
	// FetchTitles blocks until every link has been fetched or has failed.
	// The returned error is non-nil only when ctx is done.
	FetchTitles(ctx context.Context, links []string) (*TitleResult, error)
}

// UniqueTitles removes records with a title already seen earlier in the
// slice. Titles compare by exact string match, so all empty titles
// collapse into the first one.
func UniqueTitles(records []TitleRecord) []TitleRecord {
	seen := make(map[string]struct{}, len(records))
	unique := make([]TitleRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Title]; ok {
			continue
		}
		seen[r.Title] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
