package extract

import (
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
)

// Extract dispatches to the analyzer for a container type and returns its
// attribute record, or nil for types without one.
func Extract(t component.Type, el *dom.ElementNode, style dom.StyleSnapshot) any {
	switch t {
	case component.TypeAccordion:
		return Accordion(el, style)
	case component.TypeTabs:
		return Tabs(el, style)
	case component.TypeCarousel:
		return Carousel(el, style)
	case component.TypeGallery:
		return Gallery(el, style)
	case component.TypePricingTable, component.TypePriceTable:
		return Pricing(el, style)
	case component.TypeTable:
		return Table(el, style)
	case component.TypeModal:
		return Modal(el, style)
	default:
		return nil
	}
}
