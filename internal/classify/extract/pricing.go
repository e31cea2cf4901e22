package extract

import (
	"strings"

	"github.com/pageforge/recast/internal/dom"
)

// PricingAttrs is the attribute record for pricing-table and price-table
// components.
type PricingAttrs struct {
	PlanCount     int    `json:"plan_count"`
	HasFeatured   bool   `json:"has_featured"`
	BillingPeriod string `json:"billing_period"` // "monthly", "yearly", "both", "unknown"
	HasDiscount   bool   `json:"has_discount"`
	Currency      string `json:"currency"`
}

var currencySymbols = []string{"$", "€", "£", "¥", "₹"}

// Pricing analyzes a pricing subtree, either a semantic <table> or a
// div-based plan grid.
func Pricing(el *dom.ElementNode, _ dom.StyleSnapshot) PricingAttrs {
	attrs := PricingAttrs{
		PlanCount:     planCount(el),
		HasFeatured:   el.Matches("[class*='featured'], [class*='popular'], [class*='highlight'], [class*='recommended']"),
		BillingPeriod: "unknown",
	}

	text := strings.ToLower(el.Text())
	hasMonthly := strings.Contains(text, "month") || strings.Contains(text, "/mo")
	hasYearly := strings.Contains(text, "year") || strings.Contains(text, "annual") || strings.Contains(text, "/yr")
	switch {
	case hasMonthly && hasYearly:
		attrs.BillingPeriod = "both"
	case hasMonthly:
		attrs.BillingPeriod = "monthly"
	case hasYearly:
		attrs.BillingPeriod = "yearly"
	}

	attrs.HasDiscount = classContains(el, "discount") || classContains(el, "sale") ||
		(strings.Contains(text, "%") && (strings.Contains(text, "off") || strings.Contains(text, "save")))

	for _, sym := range currencySymbols {
		if strings.Contains(text, sym) {
			attrs.Currency = sym
			break
		}
	}

	return attrs
}

// planCount counts plan columns. Tables count header cells minus the label
// column; plan grids count plan-ish descendants, falling back to direct
// children holding a price.
func planCount(el *dom.ElementNode) int {
	if el.Tag == "table" {
		rows := el.Find("tr")
		if len(rows) == 0 {
			return 0
		}
		cells := rows[0].Count("th, td")
		if cells > 1 {
			return cells - 1
		}
		return cells
	}

	plans := el.Find("[class*='plan'], [class*='price-card'], [class*='pricing-col'], [class*='tier']")
	if len(plans) > 0 {
		return len(plans)
	}
	n := 0
	for _, child := range el.Children {
		if child.Matches("[class*='price']") {
			n++
		}
	}
	return n
}
