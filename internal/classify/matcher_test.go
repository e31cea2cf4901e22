package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
)

func element(t *testing.T, page, selector string) *dom.ElementNode {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	els := doc.Root().Find(selector)
	require.NotEmpty(t, els, "selector %q found nothing", selector)
	return els[0]
}

func singlePatternMatcher(t *testing.T, p pattern.Pattern) *Matcher {
	t.Helper()
	reg := pattern.NewRegistry()
	require.NoError(t, reg.Register(p))
	return NewMatcher(reg.Freeze(), nil)
}

func TestMatcher_FieldSemantics(t *testing.T) {
	page := `<html><body>
		<div id="t" class="pricing-grid fancy" role="region"
			 data-vendor="acme" data-widget
			 href-like="x">
			<span class="price">$9</span>
			<span class="feature">ssl</span>
		</div>
	</body></html>`

	tests := []struct {
		name string
		when pattern.PredicateSet
		want bool
	}{
		{"tag member", pattern.PredicateSet{TagNames: []string{"section", "div"}}, true},
		{"tag non-member", pattern.PredicateSet{TagNames: []string{"table"}}, false},
		{"class keyword substring", pattern.PredicateSet{ClassKeywords: []string{"pricing"}}, true},
		{"class keyword miss", pattern.PredicateSet{ClassKeywords: []string{"gallery"}}, false},
		{"aria role", pattern.PredicateSet{AriaRole: "region"}, true},
		{"aria role miss", pattern.PredicateSet{AriaRole: "dialog"}, false},
		{"attribute exact", pattern.PredicateSet{Attributes: map[string]string{"data-vendor": "acme"}}, true},
		{"attribute wrong value", pattern.PredicateSet{Attributes: map[string]string{"data-vendor": "other"}}, false},
		{"attribute wildcard", pattern.PredicateSet{Attributes: map[string]string{"data-vendor": pattern.Wildcard}}, true},
		{"attribute absent", pattern.PredicateSet{Attributes: map[string]string{"nope": pattern.Wildcard}}, false},
		{"data attr presence", pattern.PredicateSet{DataAttributes: []string{"data-widget"}}, true},
		{"data attr absent", pattern.PredicateSet{DataAttributes: []string{"data-missing"}}, false},
		{"structure all present", pattern.PredicateSet{Structure: &pattern.Structure{
			RequiredChildren: []string{"[class*='price']", "[class*='feature']"},
		}}, true},
		{"structure one missing", pattern.PredicateSet{Structure: &pattern.Structure{
			RequiredChildren: []string{"[class*='price']", "[class*='cta']"},
		}}, false},
		{"conjunction", pattern.PredicateSet{
			TagNames:      []string{"div"},
			ClassKeywords: []string{"fancy"},
			AriaRole:      "region",
		}, true},
	}

	el := element(t, page, "#t")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := singlePatternMatcher(t, pattern.Pattern{
				Type:       component.TypeCard,
				Confidence: 80,
				Priority:   50,
				When:       tt.when,
			})
			got := m.Match(el, dom.InlineStyles(el), nil)
			if tt.want {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestMatcher_StructureScopedToSubtree(t *testing.T) {
	page := `<html><body>
		<div id="a"><span class="price">$1</span></div>
		<div id="b"><p>no price here</p></div>
	</body></html>`

	m := singlePatternMatcher(t, pattern.Pattern{
		Type:       component.TypePriceTable,
		Confidence: 90,
		Priority:   70,
		When: pattern.PredicateSet{
			Structure: &pattern.Structure{RequiredChildren: []string{"[class*='price']"}},
		},
	})

	withPrice := element(t, page, "#a")
	assert.Len(t, m.Match(withPrice, nil, nil), 1)

	// The sibling's descendant must never satisfy this element's pattern.
	withoutPrice := element(t, page, "#b")
	assert.Empty(t, m.Match(withoutPrice, nil, nil))
}

func TestMatcher_SubFloorCandidatesStillEnumerated(t *testing.T) {
	m := singlePatternMatcher(t, pattern.Pattern{
		Type:       component.TypeSpacer,
		Confidence: 10,
		Priority:   30,
		When:       pattern.PredicateSet{TagNames: []string{"div"}},
	})

	el := element(t, `<html><body><div id="t"></div></body></html>`, "#t")
	got := m.Match(el, nil, nil)
	require.Len(t, got, 1, "the matcher enumerates below-floor matches; the resolver filters them")
	assert.Equal(t, 10, got[0].Confidence)
}

func TestMatcher_PredicateErrorFailsClosed(t *testing.T) {
	reg := pattern.NewRegistry()
	require.NoError(t, reg.Register(pattern.Pattern{
		Name:       "erroring",
		Type:       component.TypeHero,
		Confidence: 95,
		Priority:   90,
		When: pattern.PredicateSet{
			TagNames: []string{"div"},
			CSSPredicate: func(dom.StyleSnapshot, *dom.ElementNode) (bool, error) {
				return false, errors.New("resolver exploded")
			},
		},
	}))
	require.NoError(t, reg.Register(pattern.Pattern{
		Name:       "panicking",
		Type:       component.TypeHero,
		Confidence: 95,
		Priority:   90,
		When: pattern.PredicateSet{
			TagNames: []string{"div"},
			CSSPredicate: func(dom.StyleSnapshot, *dom.ElementNode) (bool, error) {
				panic("boom")
			},
		},
	}))
	require.NoError(t, reg.Register(pattern.Pattern{
		Name:       "healthy",
		Type:       component.TypeCard,
		Confidence: 70,
		Priority:   50,
		When:       pattern.PredicateSet{TagNames: []string{"div"}},
	}))

	m := NewMatcher(reg.Freeze(), nil)
	el := element(t, `<html><body><div id="t">x</div></body></html>`, "#t")

	diag := newDiagnostics()
	got := m.Match(el, nil, diag)

	require.Len(t, got, 1, "faulty predicates degrade to non-match, the rest keep matching")
	assert.Equal(t, component.TypeCard, got[0].Type)

	require.Len(t, diag.Entries, 2)
	assert.True(t, diag.HasCode(DiagPredicateError))
}
