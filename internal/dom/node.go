package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ElementNode is one element of the parsed document tree.
//
// Attribute keys are lowercased at construction so lookups are
// case-insensitive. Children are owned by the node; Parent is a non-owning
// back-reference used for lookups only.
type ElementNode struct {
	Tag      string
	Attrs    map[string]string
	Classes  []string
	Children []*ElementNode
	Parent   *ElementNode

	// Path is a stable nth-of-type CSS path from the document root,
	// e.g. "html > body > div:nth-of-type(2) > h2". It serves as the
	// sourceRef on emitted components.
	Path string

	node *html.Node
	doc  *Document

	classSet map[string]bool
}

// Attr returns the attribute value for key (case-insensitive) and whether
// the attribute is present.
func (e *ElementNode) Attr(key string) (string, bool) {
	v, ok := e.Attrs[strings.ToLower(key)]
	return v, ok
}

// HasAttr reports attribute presence without reading the value.
func (e *ElementNode) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// ID returns the element's id attribute, or "".
func (e *ElementNode) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Role returns the element's ARIA role attribute, or "".
func (e *ElementNode) Role() string {
	v, _ := e.Attr("role")
	return v
}

// HasClass reports whether the class set contains name exactly
// (case-insensitive).
func (e *ElementNode) HasClass(name string) bool {
	return e.classSet[strings.ToLower(name)]
}

// OwnText returns the trimmed text of the element's direct text children,
// excluding descendant elements.
func (e *ElementNode) OwnText() string {
	if e.node == nil {
		return ""
	}
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(buf.String())
}

// Text returns the trimmed concatenated text of the whole subtree.
func (e *ElementNode) Text() string {
	if e.node == nil {
		return ""
	}
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.TrimSpace(buf.String())
}

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
