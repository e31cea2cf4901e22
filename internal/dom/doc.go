// Package dom materializes the input boundary of the classification engine:
// an immutable ElementNode tree plus per-element StyleSnapshot lookup.
//
// Parsing is built on specialized libraries:
//   - x/net/html + goquery: DOM construction and CSS subtree queries
//   - htmlquery: XPath subtree queries
//   - chardet + x/net/html/charset: automatic encoding detection
//
// The classifier treats everything in this package as read-only: nodes are
// never mutated after Parse returns, so a tree can back any number of
// concurrent classification runs.
package dom
