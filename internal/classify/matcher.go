package classify

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
	"github.com/pageforge/recast/internal/logging"
)

// Candidate is a pattern's successful match against one element.
type Candidate struct {
	Type       component.Type
	Confidence int
	Priority   int
	Pattern    int // registration index, the final resolution tie-break
}

// Matcher evaluates every registered pattern against one element and its
// style snapshot. It is a complete enumerator: candidates below the
// confidence floor are returned too and filtered by the Resolver, which
// keeps the Matcher pure for diagnostics and testing.
type Matcher struct {
	reg *pattern.Registry
	log *logging.Logger
}

// NewMatcher builds a matcher over a frozen registry.
func NewMatcher(reg *pattern.Registry, log *logging.Logger) *Matcher {
	if log == nil {
		log = logging.NewNop()
	}
	return &Matcher{reg: reg, log: log}
}

// Match returns one Candidate per fully-matching pattern, in registration
// order. Predicate failures (panics or predicate errors) are recorded on
// diag and degrade that pattern to non-matching; they never abort the run.
func (m *Matcher) Match(el *dom.ElementNode, style dom.StyleSnapshot, diag *Diagnostics) []Candidate {
	var out []Candidate
	for i, p := range m.reg.All() {
		ok, err := m.matches(p, el, style)
		if err != nil {
			if diag != nil {
				diag.add(DiagPredicateError, el.Path, p.Label(), err.Error())
			}
			m.log.Debug("pattern predicate failed",
				zap.String("pattern", p.Label()),
				zap.String("path", el.Path),
				zap.Error(err))
			continue
		}
		if ok {
			out = append(out, Candidate{
				Type:       p.Type,
				Confidence: p.Confidence,
				Priority:   p.Priority,
				Pattern:    i,
			})
		}
	}
	return out
}

// matches evaluates the conjunction of specified predicate fields.
// Unspecified fields are vacuously satisfied. Panics from custom predicates
// or structural queries fail closed.
func (m *Matcher) matches(p pattern.Pattern, el *dom.ElementNode, style dom.StyleSnapshot) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("predicate panic: %v", r)
		}
	}()

	ps := p.When

	if len(ps.TagNames) > 0 && !containsFold(ps.TagNames, el.Tag) {
		return false, nil
	}

	if len(ps.ClassKeywords) > 0 && !classKeywordHit(ps.ClassKeywords, el.Classes) {
		return false, nil
	}

	if ps.AriaRole != "" && !strings.EqualFold(el.Role(), ps.AriaRole) {
		return false, nil
	}

	for key, want := range ps.Attributes {
		got, present := el.Attr(key)
		if !present {
			return false, nil
		}
		if want != pattern.Wildcard && !strings.EqualFold(got, want) {
			return false, nil
		}
	}

	for _, key := range ps.DataAttributes {
		if !el.HasAttr(key) {
			return false, nil
		}
	}

	if ps.Structure != nil {
		for _, sel := range ps.Structure.RequiredChildren {
			if !el.Matches(sel) {
				return false, nil
			}
		}
	}

	if ps.CSSPredicate != nil {
		hit, perr := ps.CSSPredicate(style, el)
		if perr != nil {
			return false, perr
		}
		if !hit {
			return false, nil
		}
	}

	return true, nil
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

// classKeywordHit reports whether any class token contains any keyword,
// case-insensitive. Substring containment makes "pricing" hit
// "pricing-table" the way site-builder class conventions expect.
func classKeywordHit(keywords, classes []string) bool {
	for _, cls := range classes {
		lc := strings.ToLower(cls)
		for _, kw := range keywords {
			if strings.Contains(lc, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}
