package patterns

import (
	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
)

func contentPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			Name:       "heading/tag",
			Type:       component.TypeHeading,
			Confidence: 85,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"h1", "h2", "h3", "h4", "h5", "h6"},
			},
		},
		{
			Name:       "heading/class",
			Type:       component.TypeHeading,
			Confidence: 75,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"div", "span", "p"},
				ClassKeywords: []string{"title", "heading", "headline"},
			},
		},
		{
			Name:       "text/paragraph",
			Type:       component.TypeText,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames: []string{"p"},
			},
		},
		{
			Name:       "quote/tag",
			Type:       component.TypeQuote,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"blockquote", "q"},
			},
		},
		{
			Name:       "quote/class",
			Type:       component.TypeQuote,
			Confidence: 70,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"quote", "pullquote"},
			},
		},
		{
			Name:       "code/tag",
			Type:       component.TypeCode,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"pre", "code"},
			},
		},
		{
			Name:       "list/tag",
			Type:       component.TypeList,
			Confidence: 85,
			Priority:   pattern.PriorityGeneric,
			When: pattern.PredicateSet{
				TagNames: []string{"ul", "ol", "dl"},
			},
		},
		{
			Name:       "badge/class",
			Type:       component.TypeBadge,
			Confidence: 70,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				TagNames:      []string{"span", "div", "small"},
				ClassKeywords: []string{"badge", "chip", "pill", "label"},
			},
		},
		{
			Name:       "counter/data",
			Type:       component.TypeCounter,
			Confidence: 90,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				DataAttributes: []string{"data-count"},
			},
		},
		{
			Name:       "counter/class",
			Type:       component.TypeCounter,
			Confidence: 75,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"counter", "countup", "stat-number"},
			},
		},
		{
			Name:       "testimonial/structure",
			Type:       component.TypeTestimonial,
			Confidence: 85,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"testimonial", "review"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"blockquote, p", "cite, [class*='author']"},
				},
			},
		},
		{
			Name:       "testimonial/class",
			Type:       component.TypeTestimonial,
			Confidence: 72,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"testimonial"},
			},
		},
		{
			// Decorative type scale without heading tags: large bold text
			// blocks are headings in disguise.
			Name:       "heading/css",
			Type:       component.TypeHeading,
			Confidence: 60,
			Priority:   pattern.PriorityGeneric,
			When: pattern.PredicateSet{
				TagNames: []string{"div", "span"},
				CSSPredicate: func(style dom.StyleSnapshot, el *dom.ElementNode) (bool, error) {
					if el.OwnText() == "" {
						return false, nil
					}
					return style.Has("font-size") &&
						(style.Is("font-weight", "bold") || style.Is("font-weight", "700")), nil
				},
			},
		},
	}
}
