package pypi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/scrapedocs"
	"github.com/fwojciec/scrapedocs/pypi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestIndex serves body with status for every request and records the
// requested path.
func newTestIndex(t *testing.T, status int, body string) (*pypi.Index, <-chan string) {
	t.Helper()

	paths := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return pypi.NewIndex(pypi.WithBaseURL(server.URL + "/pypi/")), paths
}

func TestIndex_DocHomeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "prefers Documentation URL",
			status: http.StatusOK,
			body:   `{"info":{"project_urls":{"Documentation":"https://docs.example.com","Homepage":"https://homepage.example.com"}}}`,
			want:   "https://docs.example.com",
		},
		{
			name:   "falls back to Homepage URL",
			status: http.StatusOK,
			body:   `{"info":{"project_urls":{"Homepage":"https://homepage.example.com"}}}`,
			want:   "https://homepage.example.com",
		},
		{
			name:   "no URLs available",
			status: http.StatusOK,
			body:   `{"info":{"project_urls":{}}}`,
			want:   "",
		},
		{
			name:   "null project URLs",
			status: http.StatusOK,
			body:   `{"info":{"project_urls":null}}`,
			want:   "",
		},
		{
			name:   "non-string URL values are ignored",
			status: http.StatusOK,
			body:   `{"info":{"project_urls":{"Documentation":null,"Homepage":"https://homepage.example.com"}}}`,
			want:   "https://homepage.example.com",
		},
		{
			name:   "not found record",
			status: http.StatusOK,
			body:   `{"message":"Not Found"}`,
			want:   "",
		},
		{
			name:   "empty document",
			status: http.StatusOK,
			body:   `{}`,
			want:   "",
		},
		{
			name:   "null document",
			status: http.StatusOK,
			body:   `null`,
			want:   "",
		},
		{
			name:   "malformed JSON",
			status: http.StatusOK,
			body:   `{"info":`,
			want:   "",
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   ``,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			index, paths := newTestIndex(t, tt.status, tt.body)

			got, err := index.DocHomeURL(context.Background(), "test_package")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "/pypi/test_package/json", <-paths)
		})
	}
}

func TestIndex_DocHomeURL_Errors(t *testing.T) {
	t.Parallel()

	t.Run("client error is returned with URL and status", func(t *testing.T) {
		t.Parallel()

		index, _ := newTestIndex(t, http.StatusNotFound, `{"message":"Not Found"}`)

		_, err := index.DocHomeURL(context.Background(), "nonexistent_package")

		require.Error(t, err)
		assert.Equal(t, scrapedocs.ECLIENT, scrapedocs.ErrorCode(err))
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "/pypi/nonexistent_package/json")
	})

	t.Run("empty package name is invalid", func(t *testing.T) {
		t.Parallel()

		index := pypi.NewIndex()

		_, err := index.DocHomeURL(context.Background(), "  ")

		require.Error(t, err)
		assert.Equal(t, scrapedocs.EINVALID, scrapedocs.ErrorCode(err))
	})

	t.Run("unreachable index degrades to empty", func(t *testing.T) {
		t.Parallel()

		index := pypi.NewIndex(
			pypi.WithBaseURL("http://non-existent-host.invalid/pypi"),
			pypi.WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}),
		)

		got, err := index.DocHomeURL(context.Background(), "requests")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestIndex_ProjectURLs(t *testing.T) {
	t.Parallel()

	t.Run("not found record is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		index, _ := newTestIndex(t, http.StatusOK, `{"message":"Not Found"}`)

		_, err := index.ProjectURLs(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, scrapedocs.ENOTFOUND, scrapedocs.ErrorCode(err))
	})

	t.Run("returns string URLs", func(t *testing.T) {
		t.Parallel()

		index, _ := newTestIndex(t, http.StatusOK, `{"info":{"project_urls":{"Source":"https://github.com/psf/requests","Funding":null}}}`)

		urls, err := index.ProjectURLs(context.Background(), "requests")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Source": "https://github.com/psf/requests"}, urls)
	})
}

func TestIndex_PackageURL(t *testing.T) {
	t.Parallel()

	index := pypi.NewIndex()

	assert.Equal(t, "https://pypi.org/pypi/pkgX/json", index.PackageURL("pkgX"))
}
