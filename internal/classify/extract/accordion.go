package extract

import (
	"strings"

	"github.com/pageforge/recast/internal/dom"
)

// AccordionAttrs is the attribute record for accordion components.
type AccordionAttrs struct {
	ItemCount   int      `json:"item_count"`
	HasIcons    bool     `json:"has_icons"`
	Mode        string   `json:"mode"`         // "single" or "multiple"
	DefaultOpen int      `json:"default_open"` // -1 when nothing is open
	Variant     string   `json:"variant"`
	ItemTitles  []string `json:"item_titles,omitempty"`
}

// Accordion analyzes an accordion subtree. Items are located by ARIA state
// first; class conventions and direct children are fallbacks.
func Accordion(el *dom.ElementNode, _ dom.StyleSnapshot) AccordionAttrs {
	items := el.Find("[aria-expanded]")
	if len(items) == 0 {
		items = el.Find("[class*='accordion-item'], [class*='collapse-item'], [class*='panel']")
	}
	if len(items) == 0 {
		items = el.Children
	}

	attrs := AccordionAttrs{
		ItemCount:   len(items),
		HasIcons:    el.Matches("i, svg, [class*='icon'], [class*='arrow']"),
		Mode:        "single",
		DefaultOpen: -1,
		Variant:     accordionVariant(el),
	}

	if v, ok := el.Attr("aria-multiselectable"); ok && strings.EqualFold(v, "true") {
		attrs.Mode = "multiple"
	}
	if v, ok := el.Attr("data-accordion"); ok && strings.EqualFold(v, "multiple") {
		attrs.Mode = "multiple"
	}

	for i, item := range items {
		if expanded, ok := item.Attr("aria-expanded"); ok && strings.EqualFold(expanded, "true") {
			attrs.DefaultOpen = i
			break
		}
		if item.HasClass("active") || item.HasClass("open") || item.HasClass("show") {
			attrs.DefaultOpen = i
			break
		}
	}

	for _, item := range items {
		title := firstText(item, "h1, h2, h3, h4, h5, h6, [class*='title'], [class*='header']")
		if title == "" {
			title = cleanText(item.OwnText())
		}
		if title != "" {
			attrs.ItemTitles = append(attrs.ItemTitles, title)
		}
	}

	return attrs
}

func accordionVariant(el *dom.ElementNode) string {
	switch {
	case classContains(el, "border"):
		return "bordered"
	case classContains(el, "flush"), classContains(el, "minimal"):
		return "flush"
	case classContains(el, "fill"), classContains(el, "solid"):
		return "filled"
	default:
		return "default"
	}
}
