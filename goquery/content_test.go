package goquery_test

import (
	"testing"

	"github.com/fwojciec/scrapedocs/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraphs in main content",
			html: `<div class='main-content'><p>Hello World</p><p>Another line</p></div>`,
			want: "Hello World\nAnother line",
		},
		{
			name: "highlight block captured whole",
			html: `<div class='main-content'><div class='highlight'><p>Highlighted text</p></div></div>`,
			want: "Highlighted text",
		},
		{
			name: "ignores content outside the container",
			html: `<div class='sidebar'><p>Should not be included</p></div><div class='main-content'><p>Included</p></div>`,
			want: "Included",
		},
		{
			name: "nested highlight inside plain div",
			html: `<div class='main-content'><div><div class='highlight'><p>Nested highlight</p></div></div></div>`,
			want: "Nested highlight",
		},
		{
			name: "skips footer",
			html: `<div class='main-content'><p>Main content</p><footer>Footer content</footer></div>`,
			want: "Main content",
		},
		{
			name: "empty input",
			html: "",
			want: "",
		},
		{
			name: "headings and paragraphs in order",
			html: `<div class='main-content'><h1>Title</h1><p>Paragraph 1</p><p>Paragraph 2</p></div>`,
			want: "Title\nParagraph 1\nParagraph 2",
		},
		{
			name: "no content container",
			html: `<div class='header'><h1>Header text</h1></div><p>Orphan paragraph</p>`,
			want: "",
		},
		{
			name: "paragraph text includes nested markup",
			html: `<div class="rst-content"><p>Use <code>get()</code> to <em>fetch</em>.</p></div>`,
			want: "Use get() to fetch.",
		},
		{
			name: "bare text nodes are trimmed",
			html: `<section class="bd-content"><dl><dt>  requests.get(url)  </dt><dd><p>Sends a GET request.</p></dd></dl></section>`,
			want: "requests.get(url)\nSends a GET request.",
		},
		{
			name: "pre block keeps its lines",
			html: "<main class=\"bd-main\"><pre>>>> import foo\n>>> foo.bar()</pre></main>",
			want: ">>> import foo\n>>> foo.bar()",
		},
		{
			name: "script and style are ignored",
			html: `<div class="content"><script>var x = 1;</script><style>p{}</style><p>Visible</p></div>`,
			want: "Visible",
		},
		{
			name: "nav and aside inside the container are transparent",
			html: `<div class="content"><nav><p>Previous</p></nav><aside><p>Note</p></aside><header><h1>API</h1></header><p>Body</p></div>`,
			want: "Previous\nNote\nAPI\nBody",
		},
		{
			name: "noscript is ignored",
			html: `<div class="content"><noscript><p>Enable JS</p></noscript><p>Body</p></div>`,
			want: "Body",
		},
		{
			name: "whitespace-only paragraphs are dropped",
			html: `<div class="content"><p>   </p><p>Kept</p></div>`,
			want: "Kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := goquery.PageText(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindContent(t *testing.T) {
	t.Parallel()

	t.Run("returns first of two sibling containers", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.ParseTree(`<div class="content"><p>First</p></div><div class="main-content"><p>Second</p></div>`)
		require.NoError(t, err)

		content, ok := goquery.FindContent(root)

		require.True(t, ok)
		assert.Equal(t, []string{"content"}, content.Classes)
		assert.Equal(t, "First", goquery.TextContent(content))
	})

	t.Run("outer container wins over nested one", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.ParseTree(`<div class="document rst-content"><div class="bd-content"><p>Inner</p></div><p>Outer</p></div>`)
		require.NoError(t, err)

		content, ok := goquery.FindContent(root)

		require.True(t, ok)
		assert.Equal(t, []string{"document", "rst-content"}, content.Classes)
	})

	t.Run("deep container is found before a later shallow one", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.ParseTree(`<div><div><div class="content" id="deep"><p>Deep</p></div></div></div><div class="content"><p>Shallow</p></div>`)
		require.NoError(t, err)

		content, ok := goquery.FindContent(root)

		require.True(t, ok)
		assert.Equal(t, "Deep", goquery.TextContent(content))
	})

	t.Run("ignores marker class on non-container tags", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.ParseTree(`<span class="content">Inline</span><p class="main-content">Para</p>`)
		require.NoError(t, err)

		_, ok := goquery.FindContent(root)

		assert.False(t, ok)
	})

	t.Run("missing or empty class never matches", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.ParseTree(`<div><p>No class</p></div><div class=""><p>Empty class</p></div>`)
		require.NoError(t, err)

		_, ok := goquery.FindContent(root)

		assert.False(t, ok)
	})
}

func TestExtractLines(t *testing.T) {
	t.Parallel()

	t.Run("walks a hand-built tree", func(t *testing.T) {
		t.Parallel()

		root := &goquery.ElementNode{
			Tag:     "div",
			Classes: []string{"content"},
			Children: []goquery.Node{
				&goquery.TextNode{Text: "  intro  "},
				&goquery.ElementNode{Tag: "h2", Children: []goquery.Node{&goquery.TextNode{Text: "Usage"}}},
				&goquery.ElementNode{Tag: "ul", Children: []goquery.Node{
					&goquery.ElementNode{Tag: "li", Children: []goquery.Node{&goquery.TextNode{Text: "item"}}},
				}},
				&goquery.TextNode{Text: "\n   \n"},
			},
		}

		assert.Equal(t, []string{"intro", "Usage", "item"}, goquery.ExtractLines(root))
	})

	t.Run("visits a shared node only once", func(t *testing.T) {
		t.Parallel()

		shared := &goquery.ElementNode{Tag: "p", Children: []goquery.Node{&goquery.TextNode{Text: "once"}}}
		root := &goquery.ElementNode{Tag: "div", Children: []goquery.Node{shared, shared}}

		assert.Equal(t, []string{"once"}, goquery.ExtractLines(root))
	})

	t.Run("empty element yields no lines", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.ExtractLines(&goquery.ElementNode{Tag: "div"}))
	})
}

func TestContentHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns outer HTML of container", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.ContentHTML(`<nav>Menu</nav><div class="content"><h1>Title</h1></div>`)

		require.NoError(t, err)
		assert.Equal(t, `<div class="content"><h1>Title</h1></div>`, got)
	})

	t.Run("empty without container", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.ContentHTML(`<p>Nothing here</p>`)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
