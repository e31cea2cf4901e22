package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// MaxHTMLSize limits document input to 10MB to prevent memory exhaustion.
const MaxHTMLSize = 10 * 1024 * 1024

// Document owns a parsed element tree and the reverse lookup from raw
// html.Nodes back to ElementNodes used by subtree queries.
type Document struct {
	root   *ElementNode
	lookup map[*html.Node]*ElementNode
}

// Root returns the document's root element (the <html> element).
func (d *Document) Root() *ElementNode {
	return d.root
}

// Parse reads an HTML document, detects its character encoding, and builds
// the ElementNode tree. The returned tree is immutable.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxHTMLSize+1))
	if err != nil {
		return nil, fmt.Errorf("read html: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("html content required")
	}
	if len(data) > MaxHTMLSize {
		return nil, fmt.Errorf("html exceeds maximum size of %d bytes", MaxHTMLSize)
	}

	root, err := html.Parse(decodeReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return build(root), nil
}

// ParseString is a convenience wrapper over Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// decodeReader converts raw bytes to a UTF-8 reader using detected charset,
// falling back to the raw bytes when detection or conversion fails.
func decodeReader(data []byte) io.Reader {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return bytes.NewReader(data)
	}
	utf8Reader, err := charset.NewReader(bytes.NewReader(data), strings.ToLower(result.Charset))
	if err != nil {
		return bytes.NewReader(data)
	}
	return utf8Reader
}

// build walks the raw parse tree and materializes ElementNodes for element
// nodes only, assigning stable nth-of-type paths.
func build(root *html.Node) *Document {
	doc := &Document{lookup: make(map[*html.Node]*ElementNode)}

	var convert func(n *html.Node, parent *ElementNode, parentPath string) *ElementNode
	convert = func(n *html.Node, parent *ElementNode, parentPath string) *ElementNode {
		el := &ElementNode{
			Tag:    strings.ToLower(n.Data),
			Attrs:  make(map[string]string, len(n.Attr)),
			Parent: parent,
			node:   n,
			doc:    doc,
		}
		for _, a := range n.Attr {
			el.Attrs[strings.ToLower(a.Key)] = a.Val
		}
		if cls, ok := el.Attrs["class"]; ok {
			el.Classes = strings.Fields(cls)
			el.classSet = make(map[string]bool, len(el.Classes))
			for _, c := range el.Classes {
				el.classSet[strings.ToLower(c)] = true
			}
		}

		el.Path = childPath(parentPath, n)
		doc.lookup[n] = el

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				el.Children = append(el.Children, convert(c, el, el.Path))
			}
		}
		return el
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			doc.root = convert(c, nil, "")
			break
		}
	}
	return doc
}

// childPath computes the nth-of-type CSS path segment for n under parentPath.
func childPath(parentPath string, n *html.Node) string {
	tag := strings.ToLower(n.Data)
	nth := 1
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode && strings.EqualFold(s.Data, n.Data) {
			nth++
		}
	}
	seg := tag
	if nth > 1 || hasLaterSameTag(n) {
		seg = fmt.Sprintf("%s:nth-of-type(%d)", tag, nth)
	}
	if parentPath == "" {
		return seg
	}
	return parentPath + " > " + seg
}

func hasLaterSameTag(n *html.Node) bool {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && strings.EqualFold(s.Data, n.Data) {
			return true
		}
	}
	return false
}
