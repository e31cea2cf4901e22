package extract

import (
	"github.com/pageforge/recast/internal/dom"
)

// ModalAttrs is the attribute record for modal/dialog components.
type ModalAttrs struct {
	HasCloseButton bool   `json:"has_close_button"`
	HasHeader      bool   `json:"has_header"`
	HasFooter      bool   `json:"has_footer"`
	Title          string `json:"title,omitempty"`
}

// Modal analyzes a dialog subtree.
func Modal(el *dom.ElementNode, _ dom.StyleSnapshot) ModalAttrs {
	return ModalAttrs{
		HasCloseButton: el.Matches("[class*='close'], [aria-label='close'], [data-dismiss]"),
		HasHeader:      el.Matches("[class*='modal-header'], header"),
		HasFooter:      el.Matches("[class*='modal-footer'], footer"),
		Title:          firstText(el, "h1, h2, h3, h4, [class*='modal-title']"),
	}
}
