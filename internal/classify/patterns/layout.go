package patterns

import (
	"strings"

	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
)

func layoutPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			Name:       "divider/tag",
			Type:       component.TypeDivider,
			Confidence: 95,
			Priority:   pattern.PriorityExplicit,
			When: pattern.PredicateSet{
				TagNames: []string{"hr"},
			},
		},
		{
			Name:       "divider/class",
			Type:       component.TypeDivider,
			Confidence: 75,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"divider", "separator"},
			},
		},
		{
			Name:       "spacer/class",
			Type:       component.TypeSpacer,
			Confidence: 80,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"spacer", "gap", "empty-space"},
			},
		},
		{
			// Empty block holding vertical space only.
			Name:       "spacer/css",
			Type:       component.TypeSpacer,
			Confidence: 60,
			Priority:   pattern.PriorityGeneric,
			When: pattern.PredicateSet{
				TagNames: []string{"div", "span", "hr"},
				CSSPredicate: func(style dom.StyleSnapshot, el *dom.ElementNode) (bool, error) {
					if el.Text() != "" || len(el.Children) > 0 {
						return false, nil
					}
					return style.Has("height") || style.Has("min-height") ||
						style.Has("padding-top") || style.Has("margin-top"), nil
				},
			},
		},
		{
			Name:       "hero/structure",
			Type:       component.TypeHero,
			Confidence: 85,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				TagNames:      []string{"section", "div", "header"},
				ClassKeywords: []string{"hero", "jumbotron", "masthead"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"h1, h2"},
				},
			},
		},
		{
			Name:       "hero/class",
			Type:       component.TypeHero,
			Confidence: 75,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"hero", "jumbotron"},
			},
		},
		{
			Name:       "card/structure",
			Type:       component.TypeCard,
			Confidence: 85,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"card", "tile"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"img, [class*='image']", "h2, h3, h4"},
				},
			},
		},
		{
			Name:       "card/class",
			Type:       component.TypeCard,
			Confidence: 78,
			Priority:   pattern.PriorityKeyword,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"card"},
			},
		},
		{
			Name:       "columns/structure",
			Type:       component.TypeColumns,
			Confidence: 80,
			Priority:   pattern.PriorityStructure,
			When: pattern.PredicateSet{
				ClassKeywords: []string{"row", "columns", "grid"},
				Structure: &pattern.Structure{
					RequiredChildren: []string{"[class*='col']"},
				},
			},
		},
		{
			// Multi-child flex/grid wrappers without framework classes.
			Name:       "columns/css",
			Type:       component.TypeColumns,
			Confidence: 65,
			Priority:   pattern.PriorityGeneric,
			When: pattern.PredicateSet{
				TagNames: []string{"div", "section"},
				CSSPredicate: func(style dom.StyleSnapshot, el *dom.ElementNode) (bool, error) {
					if len(el.Children) < 2 {
						return false, nil
					}
					display := strings.ToLower(style.Get("display"))
					return display == "flex" || display == "grid", nil
				},
			},
		},
		{
			Name:       "section/tag",
			Type:       component.TypeSection,
			Confidence: 75,
			Priority:   pattern.PriorityGeneric,
			When: pattern.PredicateSet{
				TagNames: []string{"section", "article", "main", "aside", "footer", "header"},
			},
		},
	}
}
