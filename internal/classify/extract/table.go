package extract

import (
	"strings"

	"github.com/pageforge/recast/internal/dom"
)

// TableAttrs is the attribute record for table components.
type TableAttrs struct {
	RowCount    int    `json:"row_count"`
	ColumnCount int    `json:"column_count"`
	HasHeader   bool   `json:"has_header"`
	HasFooter   bool   `json:"has_footer"`
	Sortable    bool   `json:"sortable"`
	Responsive  bool   `json:"responsive"`
	Subtype     string `json:"subtype"` // "data", "pricing", "comparison", "standard"
}

// Table analyzes a table subtree. Header presence is auto-detected from the
// first row's cells when no <thead> exists.
func Table(el *dom.ElementNode, _ dom.StyleSnapshot) TableAttrs {
	rows := el.Find("tr")

	attrs := TableAttrs{
		RowCount:   len(rows),
		HasHeader:  el.Matches("thead"),
		HasFooter:  el.Matches("tfoot"),
		Sortable:   el.HasAttr("data-sortable") || classContains(el, "sortable") || el.Matches("th[data-sort]"),
		Responsive: classContains(el, "responsive"),
	}

	if len(rows) > 0 {
		attrs.ColumnCount = rows[0].Count("th, td")
		if !attrs.HasHeader {
			attrs.HasHeader = rows[0].Count("th") > 0
		}
	}
	if attrs.HasHeader && attrs.RowCount > 0 {
		attrs.RowCount--
	}

	attrs.Subtype = tableSubtype(el, attrs)
	return attrs
}

func tableSubtype(el *dom.ElementNode, attrs TableAttrs) string {
	switch {
	case classContains(el, "compar"):
		return "comparison"
	case classContains(el, "pricing"), classContains(el, "price"), hasCurrency(el):
		return "pricing"
	case attrs.HasHeader && attrs.RowCount > 1:
		return "data"
	default:
		return "standard"
	}
}

func hasCurrency(el *dom.ElementNode) bool {
	text := el.Text()
	for _, sym := range currencySymbols {
		if strings.Contains(text, sym) {
			return true
		}
	}
	return false
}
