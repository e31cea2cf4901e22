package extract

import (
	"strings"

	"github.com/pageforge/recast/internal/dom"
)

// CarouselAttrs is the attribute record for carousel/slider components.
type CarouselAttrs struct {
	SlideCount    int    `json:"slide_count"`
	Autoplay      bool   `json:"autoplay"`
	HasControls   bool   `json:"has_controls"`
	HasIndicators bool   `json:"has_indicators"`
	Transition    string `json:"transition"` // "slide" or "fade"
	InfiniteLoop  bool   `json:"infinite_loop"`
}

// Carousel analyzes a carousel subtree.
func Carousel(el *dom.ElementNode, _ dom.StyleSnapshot) CarouselAttrs {
	slides := el.Find(".carousel-item, .swiper-slide, .slick-slide, .slide, [data-slide-index]")
	if len(slides) == 0 {
		slides = el.Find("[class*='slide-item'], li[class*='slide']")
	}

	attrs := CarouselAttrs{
		SlideCount:    len(slides),
		Autoplay:      el.HasAttr("data-autoplay") || hasAttrValue(el, "data-ride", "carousel"),
		HasControls:   el.Matches("[class*='prev'], [class*='next'], [class*='arrow'], button[class*='control']"),
		HasIndicators: el.Matches("[class*='indicator'], [class*='dots'], [class*='pagination']"),
		Transition:    "slide",
		InfiniteLoop:  el.HasAttr("data-loop") || classContains(el, "infinite"),
	}

	if classContains(el, "fade") || hasAttrValue(el, "data-transition", "fade") {
		attrs.Transition = "fade"
	}
	if v, ok := el.Attr("data-wrap"); ok && !strings.EqualFold(v, "false") {
		attrs.InfiniteLoop = true
	}

	return attrs
}

func hasAttrValue(el *dom.ElementNode, key, want string) bool {
	v, ok := el.Attr(key)
	return ok && strings.EqualFold(v, want)
}
