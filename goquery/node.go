// Package goquery parses documentation pages with goquery and extracts
// their title, reference links and main content text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is a node of a parsed page: either a *TextNode or an *ElementNode.
type Node interface {
	node()
}

// TextNode holds raw character data.
type TextNode struct {
	Text string
}

// ElementNode is an element with its tag name, class list and children.
// The document root is an ElementNode with an empty tag.
type ElementNode struct {
	Tag      string
	Classes  []string
	Children []Node

	src *html.Node
}

func (*TextNode) node()    {}
func (*ElementNode) node() {}

// HasClass reports whether the element's class list contains class.
func (e *ElementNode) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// HasAnyClass reports whether the element carries at least one of classes.
func (e *ElementNode) HasAnyClass(classes map[string]struct{}) bool {
	for _, c := range e.Classes {
		if _, ok := classes[c]; ok {
			return true
		}
	}
	return false
}

// ParseTree parses HTML into a node tree. Parsing is permissive: malformed
// or empty input yields a tree with whatever structure could be recovered.
func ParseTree(htmlStr string) (*ElementNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}
	return convert(doc.Nodes[0]), nil
}

func convert(n *html.Node) *ElementNode {
	el := &ElementNode{src: n}
	if n.Type == html.ElementNode {
		el.Tag = n.Data
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "class" {
				el.Classes = strings.Fields(a.Val)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			el.Children = append(el.Children, &TextNode{Text: c.Data})
		case html.ElementNode:
			el.Children = append(el.Children, convert(c))
		}
	}
	return el
}

// TextContent returns the concatenated text of n and all its descendants.
func TextContent(n Node) string {
	var sb strings.Builder
	writeText(&sb, n)
	return sb.String()
}

func writeText(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *TextNode:
		sb.WriteString(n.Text)
	case *ElementNode:
		for _, c := range n.Children {
			writeText(sb, c)
		}
	}
}

// OuterHTML renders the element back to HTML.
func OuterHTML(e *ElementNode) (string, error) {
	if e.src == nil {
		return "", nil
	}
	return goquery.OuterHtml(goquery.NewDocumentFromNode(e.src).Selection)
}
