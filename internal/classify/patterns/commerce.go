package patterns

import (
	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
)

func commercePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			// Semantic <table> carrying plan/price columns.
			Name:       "pricing-table/table",
			Type:       component.TypePricingTable,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames:      []string{"table"},
				ClassKeywords: []string{"pricing", "plans", "price"},
			},
		},
		{
			Name:       "pricing-table/data",
			Type:       component.TypePricingTable,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				DataAttributes: []string{"data-pricing"},
			},
		},
		{
			// Div-based pricing sections: plan cards with price and
			// feature descendants.
			Name:       "price-table/structure",
			Type:       component.TypePriceTable,
			Confidence: 95,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				TagNames:      []string{"div", "section"},
				ClassKeywords: []string{"pricing", "price"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"[class*='price']", "[class*='feature']"},
				},
			},
		},
		{
			Name:       "price-table/class",
			Type:       component.TypePriceTable,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"div", "section"},
				ClassKeywords: []string{"pricing-table", "price-table", "plans"},
			},
		},
		{
			Name:       "table/tag",
			Type:       component.TypeTable,
			Confidence: 90,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"table"},
			},
		},
		{
			Name:       "table/role",
			Type:       component.TypeTable,
			Confidence: 90,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "table",
			},
		},
	}
}
