package patterns

import (
	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
)

func interactivePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			// A tablist whose panels toggle aria-expanded is an accordion,
			// not a tab strip.
			Name:       "accordion/aria",
			Type:       component.TypeAccordion,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "tablist",
				Structure: &pattern.Structure{
					RequiredChildren: []string{"[aria-expanded]"},
				},
			},
		},
		{
			Name:       "accordion/data",
			Type:       component.TypeAccordion,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				DataAttributes: []string{"data-accordion"},
			},
		},
		{
			Name:       "accordion/class",
			Type:       component.TypeAccordion,
			Confidence: 90,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"accordion", "collapsible"},
			},
		},
		{
			Name:       "tabs/role",
			Type:       component.TypeTabs,
			Confidence: 90,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "tablist",
				Structure: &pattern.Structure{
					RequiredChildren: []string{"[role='tab']"},
				},
			},
		},
		{
			Name:       "tabs/structure",
			Type:       component.TypeTabs,
			Confidence: 85,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"tabs", "tabbed"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"[class*='tab']"},
				},
			},
		},
		{
			Name:       "modal/role",
			Type:       component.TypeModal,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "dialog",
			},
		},
		{
			Name:       "modal/aria",
			Type:       component.TypeModal,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				Attributes: map[string]string{"aria-modal": "true"},
			},
		},
		{
			Name:       "modal/class",
			Type:       component.TypeModal,
			Confidence: 85,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"modal", "popup", "lightbox"},
			},
		},
		{
			Name:       "form/tag",
			Type:       component.TypeForm,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"form"},
			},
		},
		{
			Name:       "input/tag",
			Type:       component.TypeInput,
			Confidence: 90,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"input", "textarea", "select"},
			},
		},
		{
			Name:       "progress/tag",
			Type:       component.TypeProgress,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"progress", "meter"},
			},
		},
		{
			Name:       "progress/role",
			Type:       component.TypeProgress,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "progressbar",
			},
		},
		{
			Name:       "progress/class",
			Type:       component.TypeProgress,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"progress"},
			},
		},
		{
			Name:       "alert/role",
			Type:       component.TypeAlert,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				AriaRole: "alert",
			},
		},
		{
			Name:       "alert/class",
			Type:       component.TypeAlert,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"alert", "notice", "notification", "toast"},
			},
		},
	}
}
