package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/scrapedocs"
	"github.com/fwojciec/scrapedocs/goquery"
	"github.com/fwojciec/scrapedocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinksByClass(t *testing.T) {
	t.Parallel()

	t.Run("keeps absolute and resolves relative links", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<body>
	<a href="https://example.com/page1" class="link-class">Link 1</a>
	<a href="/page2" class="link-class other-class">Link 2</a>
	<a href="/page3" class="other-class">Link 3</a>
</body>
</html>`

		links, err := goquery.ExtractLinksByClass(html, "https://example.com", []string{"link-class"})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/page1", "https://example.com/page2"}, links)
	})

	t.Run("requires every class", func(t *testing.T) {
		t.Parallel()

		html := `<div class="toctree-wrapper">
	<a class="reference internal" href="quickstart.html">Quickstart</a>
	<a class="reference external" href="https://github.com/psf/requests">GitHub</a>
	<a class="internal" href="api.html">API</a>
	<a class="reference internal" href="api.html#module-requests">API Reference</a>
</div>`

		links, err := goquery.ExtractLinksByClass(html, "https://requests.readthedocs.io/en/latest/", scrapedocs.ReferenceClasses)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://requests.readthedocs.io/en/latest/quickstart.html",
			"https://requests.readthedocs.io/en/latest/api.html#module-requests",
		}, links)
	})

	t.Run("skips non-HTTP and empty hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<a class="x" href="mailto:a@b.c">Mail</a><a class="x" href="">Empty</a><a class="x">None</a><a class="x" href="JavaScript:void(0)">JS</a><a class="x" href="ok.html">OK</a>`

		links, err := goquery.ExtractLinksByClass(html, "https://example.com/docs/", []string{"x"})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/ok.html"}, links)
	})

	t.Run("no matching links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/page1" class="other-class">Link 1</a>`

		links, err := goquery.ExtractLinksByClass(html, "https://example.com", []string{"link-class"})

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("rejects invalid class names", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractLinksByClass("", "https://example.com", []string{"bad class"})

		require.Error(t, err)
		assert.Equal(t, scrapedocs.EINVALID, scrapedocs.ErrorCode(err))
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractLinksByClass("", "://bad", []string{"x"})

		require.Error(t, err)
		assert.Equal(t, scrapedocs.EINVALID, scrapedocs.ErrorCode(err))
	})
}

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns page URL followed by matching links", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return `<a class="link-class" href="https://example.com/page1">1</a><a class="link-class other-class" href="/page2">2</a>`, nil
			},
		}

		links, err := goquery.NewLinkExtractor(fetcher).ExtractLinks(context.Background(), "https://example.com", []string{"link-class"})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com", "https://example.com/page1", "https://example.com/page2"}, links)
	})

	t.Run("returns only page URL when nothing matches", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return `<a class="other-class" href="/page2">2</a>`, nil
			},
		}

		links, err := goquery.NewLinkExtractor(fetcher).ExtractLinks(context.Background(), "https://example.com", []string{"link-class"})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com"}, links)
	})

	t.Run("returns no links when fetch fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		links, err := goquery.NewLinkExtractor(fetcher).ExtractLinks(context.Background(), "https://example.com", []string{"link-class"})

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("returns no links on server error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", &scrapedocs.StatusError{URL: url, StatusCode: 502}
			},
		}

		links, err := goquery.NewLinkExtractor(fetcher).ExtractLinks(context.Background(), "https://example.com", []string{"link-class"})

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("returns client errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", &scrapedocs.StatusError{URL: url, StatusCode: 404}
			},
		}

		_, err := goquery.NewLinkExtractor(fetcher).ExtractLinks(context.Background(), "https://example.com/missing", []string{"link-class"})

		require.Error(t, err)
		assert.Equal(t, scrapedocs.ECLIENT, scrapedocs.ErrorCode(err))
		assert.Contains(t, err.Error(), "https://example.com/missing")
	})
}
