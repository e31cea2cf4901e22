package extract

import (
	"strings"

	"github.com/pageforge/recast/internal/dom"
)

// TabsAttrs is the attribute record for tab strip components.
type TabsAttrs struct {
	TabCount    int      `json:"tab_count"`
	Orientation string   `json:"orientation"`  // "horizontal" or "vertical"
	ActiveIndex int      `json:"active_index"` // -1 when none marked active
	HasIcons    bool     `json:"has_icons"`
	Style       string   `json:"style"`
	Labels      []string `json:"labels,omitempty"`
}

// Tabs analyzes a tab strip subtree.
func Tabs(el *dom.ElementNode, style dom.StyleSnapshot) TabsAttrs {
	tabs := el.Find("[role='tab']")
	if len(tabs) == 0 {
		tabs = el.Find("[class*='tab-link'], [class*='tab-item'], li")
	}

	attrs := TabsAttrs{
		TabCount:    len(tabs),
		Orientation: "horizontal",
		ActiveIndex: -1,
		HasIcons:    el.Matches("i, svg, [class*='icon']"),
		Style:       tabStyle(el),
	}

	if v, ok := el.Attr("aria-orientation"); ok && strings.EqualFold(v, "vertical") {
		attrs.Orientation = "vertical"
	} else if classContains(el, "vertical") || style.Is("flex-direction", "column") {
		attrs.Orientation = "vertical"
	}

	for i, tab := range tabs {
		if selected, ok := tab.Attr("aria-selected"); ok && strings.EqualFold(selected, "true") {
			attrs.ActiveIndex = i
			break
		}
		if tab.HasClass("active") || tab.HasClass("selected") || tab.HasClass("current") {
			attrs.ActiveIndex = i
			break
		}
	}

	for _, tab := range tabs {
		if label := cleanText(tab.Text()); label != "" {
			attrs.Labels = append(attrs.Labels, label)
		}
	}

	return attrs
}

func tabStyle(el *dom.ElementNode) string {
	switch {
	case classContains(el, "pill"):
		return "pills"
	case classContains(el, "underline"):
		return "underline"
	case classContains(el, "boxed"), classContains(el, "bordered"):
		return "boxed"
	default:
		return "default"
	}
}
