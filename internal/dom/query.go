package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Find returns the elements matching selector within the element's own
// subtree, in document order. Selectors beginning with "//" are evaluated as
// XPath expressions; everything else is a CSS selector. The receiving
// element itself is never part of the result set.
//
// An invalid CSS selector yields no matches; an invalid XPath expression
// panics inside the underlying library, so callers evaluating untrusted
// selectors must recover.
func (e *ElementNode) Find(selector string) []*ElementNode {
	if e.node == nil || e.doc == nil {
		return nil
	}

	var raw []*html.Node
	if strings.HasPrefix(selector, "//") {
		raw = htmlquery.Find(e.node, selector)
	} else {
		doc := goquery.NewDocumentFromNode(e.node)
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			raw = append(raw, s.Nodes...)
		})
	}

	out := make([]*ElementNode, 0, len(raw))
	for _, n := range raw {
		el, ok := e.doc.lookup[n]
		if !ok || el == e {
			continue
		}
		out = append(out, el)
	}
	return out
}

// Matches reports whether at least one element in the subtree matches
// selector.
func (e *ElementNode) Matches(selector string) bool {
	return len(e.Find(selector)) > 0
}

// Count returns the number of subtree matches for selector.
func (e *ElementNode) Count(selector string) int {
	return len(e.Find(selector))
}
