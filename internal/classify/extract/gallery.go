package extract

import (
	"strings"

	"github.com/pageforge/recast/internal/dom"
)

// GalleryAttrs is the attribute record for image gallery components.
type GalleryAttrs struct {
	ImageCount  int    `json:"image_count"`
	Columns     int    `json:"columns"`
	Lightbox    bool   `json:"lightbox"`
	Layout      string `json:"layout"` // "grid", "masonry", or "justified"
	HasCaptions bool   `json:"has_captions"`
}

// Gallery analyzes a gallery subtree. Column count comes from framework
// classes first, then the computed grid template, then a bounded default.
func Gallery(el *dom.ElementNode, style dom.StyleSnapshot) GalleryAttrs {
	images := el.Find("img")

	attrs := GalleryAttrs{
		ImageCount:  len(images),
		Columns:     columnsFromClasses(el),
		Lightbox:    el.HasAttr("data-lightbox") || el.Matches("a[data-lightbox], [class*='lightbox']"),
		Layout:      "grid",
		HasCaptions: el.Matches("figcaption, [class*='caption']"),
	}

	if attrs.Columns == 0 {
		if tmpl := style.Get("grid-template-columns"); tmpl != "" {
			attrs.Columns = len(strings.Fields(tmpl))
		}
	}
	if attrs.Columns == 0 {
		attrs.Columns = min(attrs.ImageCount, 3)
	}

	switch {
	case classContains(el, "masonry"):
		attrs.Layout = "masonry"
	case classContains(el, "justified"):
		attrs.Layout = "justified"
	}

	return attrs
}
