package pattern

import (
	"fmt"

	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
)

// Wildcard accepts any attribute value in an attribute predicate.
const Wildcard = "*"

// Priority tiers. Higher values are checked first by the resolver; priority
// strictly dominates confidence, so an explicit marker (ARIA role, vendor
// class prefix, unambiguous tag) always outranks a generic heuristic.
// Increments of 20 leave room for future insertions.
const (
	PriorityExplicit  = 90 // ARIA roles, vendor markers, unambiguous tags
	PriorityStructure = 70 // structural descendant evidence
	PriorityKeyword   = 50 // class keyword heuristics
	PriorityGeneric   = 30 // weak style/shape heuristics
)

// CSSPredicate is the custom predicate escape hatch: a pure function of the
// element's style snapshot and subtree view. A non-nil error (or a panic)
// degrades the pattern to non-matching for that element only.
type CSSPredicate func(style dom.StyleSnapshot, el *dom.ElementNode) (bool, error)

// Structure requires descendant evidence within the element's own subtree.
type Structure struct {
	// RequiredChildren lists selectors that must each match at least one
	// descendant. CSS by default; "//"-prefixed entries are XPath.
	RequiredChildren []string
}

// PredicateSet is a conjunction of independently-optional predicate fields.
// An unset field is vacuously satisfied; a set with every field unset is
// rejected at registration because it would match everything.
type PredicateSet struct {
	TagNames       []string
	ClassKeywords  []string
	AriaRole       string
	Attributes     map[string]string // value Wildcard accepts any value
	DataAttributes []string          // required data-* presence
	Structure      *Structure
	CSSPredicate   CSSPredicate
}

// Empty reports whether no predicate field is specified.
func (ps PredicateSet) Empty() bool {
	return len(ps.TagNames) == 0 &&
		len(ps.ClassKeywords) == 0 &&
		ps.AriaRole == "" &&
		len(ps.Attributes) == 0 &&
		len(ps.DataAttributes) == 0 &&
		(ps.Structure == nil || len(ps.Structure.RequiredChildren) == 0) &&
		ps.CSSPredicate == nil
}

// Pattern is one declarative recognition rule.
type Pattern struct {
	// Name labels the pattern in diagnostics. Optional.
	Name string

	Type       component.Type
	Confidence int // [0,100]
	Priority   int // [0,100]; larger = more specific, wins ties
	When       PredicateSet
}

// MalformedPatternError reports an invalid pattern at registration time.
// It signals an authoring bug, never a data problem, so registration is the
// sole fatal path of the engine.
type MalformedPatternError struct {
	Pattern string
	Reason  string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q: %s", e.Pattern, e.Reason)
}

// Validate checks the pattern eagerly so authoring mistakes surface at
// start-up rather than mid-classification.
func (p Pattern) Validate() error {
	label := p.Name
	if label == "" {
		label = string(p.Type)
	}
	if !component.Known(p.Type) {
		return &MalformedPatternError{Pattern: label, Reason: fmt.Sprintf("unknown component type %q", p.Type)}
	}
	if p.Confidence < 0 || p.Confidence > 100 {
		return &MalformedPatternError{Pattern: label, Reason: fmt.Sprintf("confidence %d out of range [0,100]", p.Confidence)}
	}
	if p.Priority < 0 || p.Priority > 100 {
		return &MalformedPatternError{Pattern: label, Reason: fmt.Sprintf("priority %d out of range [0,100]", p.Priority)}
	}
	if p.When.Empty() {
		return &MalformedPatternError{Pattern: label, Reason: "empty predicate set matches everything"}
	}
	return nil
}

// Label returns the diagnostic label for the pattern.
func (p Pattern) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return string(p.Type)
}
