package goquery

import "strings"

// ContentMarkers are the class names documentation generators put on their
// main content container (Sphinx basic, ReadTheDocs and PyData themes).
var ContentMarkers = map[string]struct{}{
	"content":      {},
	"main-content": {},
	"rst-content":  {},
	"bd-main":      {},
	"bd-content":   {},
}

// containerTags are the elements that may hold a page's main content.
var containerTags = map[string]struct{}{
	"div":     {},
	"main":    {},
	"section": {},
	"article": {},
}

// textTags are captured whole: their full text becomes one line.
var textTags = map[string]struct{}{
	"p":   {},
	"h1":  {},
	"h2":  {},
	"h3":  {},
	"h4":  {},
	"h5":  {},
	"h6":  {},
	"pre": {},
}

// skipTags never contribute text. Every other element is transparent.
var skipTags = map[string]struct{}{
	"footer":   {},
	"script":   {},
	"style":    {},
	"noscript": {},
}

// highlightClass marks a rendered code block (<div class="highlight">).
const highlightClass = "highlight"

// FindContent returns the first content container in a pre-order,
// left-to-right walk of the tree. A matching container is not searched
// further, so an outer container wins over a nested one.
func FindContent(root *ElementNode) (*ElementNode, bool) {
	if isContainer(root) {
		return root, true
	}
	for _, c := range root.Children {
		el, ok := c.(*ElementNode)
		if !ok {
			continue
		}
		if found, ok := FindContent(el); ok {
			return found, true
		}
	}
	return nil, false
}

func isContainer(e *ElementNode) bool {
	if _, ok := containerTags[e.Tag]; !ok {
		return false
	}
	return e.HasAnyClass(ContentMarkers)
}

// lineAccumulator collects text fragments in document order.
type lineAccumulator struct {
	lines   []string
	visited map[Node]struct{}
}

func (a *lineAccumulator) walk(e *ElementNode) {
	for _, c := range e.Children {
		if _, ok := a.visited[c]; ok {
			continue
		}
		a.visited[c] = struct{}{}

		switch c := c.(type) {
		case *TextNode:
			a.lines = append(a.lines, strings.TrimSpace(c.Text))
		case *ElementNode:
			switch {
			case isSkipped(c):
			case isTextBlock(c):
				a.lines = append(a.lines, TextContent(c))
			default:
				a.walk(c)
			}
		}
	}
}

func isSkipped(e *ElementNode) bool {
	_, ok := skipTags[e.Tag]
	return ok
}

func isTextBlock(e *ElementNode) bool {
	if _, ok := textTags[e.Tag]; ok {
		return true
	}
	return e.Tag == "div" && e.HasClass(highlightClass)
}

// ExtractLines returns the readable text under root, one fragment per text
// node, paragraph, heading, preformatted block or highlighted code block,
// in document order. Blank fragments are dropped.
func ExtractLines(root *ElementNode) []string {
	acc := &lineAccumulator{visited: make(map[Node]struct{})}
	acc.walk(root)

	lines := acc.lines[:0]
	for _, line := range acc.lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// PageText returns the newline-joined text lines of a page's content
// container. A page without a container, including empty input, yields "".
func PageText(htmlStr string) (string, error) {
	root, err := ParseTree(htmlStr)
	if err != nil {
		return "", err
	}
	content, ok := FindContent(root)
	if !ok {
		return "", nil
	}
	return strings.Join(ExtractLines(content), "\n"), nil
}

// ContentHTML returns the outer HTML of a page's content container, or ""
// if the page has none.
func ContentHTML(htmlStr string) (string, error) {
	root, err := ParseTree(htmlStr)
	if err != nil {
		return "", err
	}
	content, ok := FindContent(root)
	if !ok {
		return "", nil
	}
	return OuterHTML(content)
}
