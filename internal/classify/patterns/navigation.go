package patterns

import (
	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
)

func navigationPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			Name:       "menu/tag",
			Type:       component.TypeMenu,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"nav"},
			},
		},
		{
			Name:       "menu/role",
			Type:       component.TypeMenu,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "navigation",
			},
		},
		{
			Name:       "menu/class",
			Type:       component.TypeMenu,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"ul", "div"},
				ClassKeywords: []string{"menu", "navbar", "nav-links"},
			},
		},
		{
			Name:       "breadcrumb/aria",
			Type:       component.TypeBreadcrumb,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				Attributes: map[string]string{"aria-label": "breadcrumb"},
			},
		},
		{
			Name:       "breadcrumb/class",
			Type:       component.TypeBreadcrumb,
			Confidence: 85,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"breadcrumb"},
			},
		},
		{
			Name:       "button/tag",
			Type:       component.TypeButton,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"button"},
			},
		},
		{
			Name:       "button/input-submit",
			Type:       component.TypeButton,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames:   []string{"input"},
				Attributes: map[string]string{"type": "submit"},
			},
		},
		{
			Name:       "button/role",
			Type:       component.TypeButton,
			Confidence: 92,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "button",
			},
		},
		{
			Name:       "button/class",
			Type:       component.TypeButton,
			Confidence: 85,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"a", "div", "span"},
				ClassKeywords: []string{"btn", "button"},
			},
		},
		{
			Name:       "link/tag",
			Type:       component.TypeLink,
			Confidence: 85,
			Priority:   pattern.PriorityGeneric,
			When: pattern.PredicateSet{
				TagNames:   []string{"a"},
				Attributes: map[string]string{"href": pattern.Wildcard},
			},
		},
		{
			Name:       "cta/structure",
			Type:       component.TypeCTA,
			Confidence: 85,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"cta", "call-to-action"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"a, button"},
				},
			},
		},
		{
			Name:       "cta/class",
			Type:       component.TypeCTA,
			Confidence: 75,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"cta", "call-to-action"},
			},
		},
	}
}
