// Package pypi implements scrapedocs.PackageIndex over the PyPI JSON API.
package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/scrapedocs"
)

// DefaultBaseURL is the root of the PyPI JSON API.
const DefaultBaseURL = "https://pypi.org/pypi"

// DefaultTimeout bounds a single index lookup.
const DefaultTimeout = 10 * time.Second

// Ensure Index implements scrapedocs.PackageIndex at compile time.
var _ scrapedocs.PackageIndex = (*Index)(nil)

// Index looks up package metadata on PyPI.
// It is safe for concurrent use by multiple goroutines.
type Index struct {
	client  *http.Client
	baseURL string
}

// Option configures an Index.
type Option func(*Index)

// WithBaseURL points the index at another PyPI-compatible JSON API.
func WithBaseURL(baseURL string) Option {
	return func(ix *Index) {
		ix.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for lookups.
func WithHTTPClient(c *http.Client) Option {
	return func(ix *Index) {
		ix.client = c
	}
}

// NewIndex creates an Index with a DefaultTimeout HTTP client.
func NewIndex(opts ...Option) *Index {
	ix := &Index{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// apiResponse is the subset of the PyPI JSON document we read. A missing
// package may also be answered with {"message": "Not Found"}.
type apiResponse struct {
	Message string  `json:"message"`
	Info    apiInfo `json:"info"`
}

type apiInfo struct {
	Name        string         `json:"name"`
	ProjectURLs map[string]any `json:"project_urls"`
}

// PackageURL returns the JSON API URL for a package.
func (ix *Index) PackageURL(packageName string) string {
	return fmt.Sprintf("%s/%s/json", ix.baseURL, url.PathEscape(strings.TrimSpace(packageName)))
}

// ProjectURLs returns the project URLs a package declares.
// Returns ENOTFOUND when the registry answers with a "Not Found" record or
// an empty document, and a *scrapedocs.StatusError for any non-200 answer.
func (ix *Index) ProjectURLs(ctx context.Context, packageName string) (map[string]string, error) {
	if strings.TrimSpace(packageName) == "" {
		return nil, scrapedocs.Errorf(scrapedocs.EINVALID, "package name required")
	}

	endpoint := ix.PackageURL(packageName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := ix.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &scrapedocs.StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data *apiResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	if data == nil || data.Message == "Not Found" {
		return nil, scrapedocs.Errorf(scrapedocs.ENOTFOUND, "package %q not found", packageName)
	}

	urls := make(map[string]string, len(data.Info.ProjectURLs))
	for k, v := range data.Info.ProjectURLs {
		if s, ok := v.(string); ok {
			urls[k] = s
		}
	}
	return urls, nil
}

// DocHomeURL returns the package's Documentation URL, else its Homepage
// URL. It returns "" and a nil error when the package is unknown, lists
// neither URL, or the lookup fails for any reason other than a 4xx answer
// or an empty package name.
func (ix *Index) DocHomeURL(ctx context.Context, packageName string) (string, error) {
	urls, err := ix.ProjectURLs(ctx, packageName)
	if err != nil {
		if scrapedocs.IsClientError(err) || scrapedocs.ErrorCode(err) == scrapedocs.EINVALID {
			return "", err
		}
		return "", nil
	}
	return scrapedocs.DocHomeURLFromProjectURLs(urls), nil
}
