package extract

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pageforge/recast/internal/dom"
)

// stripTags removes all markup from captured text. StrictPolicy is safe for
// concurrent use, so one shared instance serves every extractor.
var stripTags = bluemonday.StrictPolicy()

// cleanText sanitizes and whitespace-normalizes text destined for an
// attribute record.
func cleanText(s string) string {
	return dom.NormalizeWhitespace(stripTags.Sanitize(s))
}

// classContains reports whether any class token of el contains the fragment.
func classContains(el *dom.ElementNode, fragment string) bool {
	for _, c := range el.Classes {
		if strings.Contains(strings.ToLower(c), fragment) {
			return true
		}
	}
	return false
}

var columnClassRe = regexp.MustCompile(`(?:columns?|cols?|grid)-(\d+)`)

// columnsFromClasses parses framework column-count classes like "columns-4".
func columnsFromClasses(el *dom.ElementNode) int {
	for _, c := range el.Classes {
		if m := columnClassRe.FindStringSubmatch(strings.ToLower(c)); m != nil {
			n := 0
			for _, r := range m[1] {
				n = n*10 + int(r-'0')
			}
			if n > 0 {
				return n
			}
		}
	}
	return 0
}

// firstText returns the cleaned text of the first subtree match, or "".
func firstText(el *dom.ElementNode, selector string) string {
	found := el.Find(selector)
	if len(found) == 0 {
		return ""
	}
	return cleanText(found[0].Text())
}
