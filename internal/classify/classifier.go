package classify

import (
	"go.uber.org/zap"

	"github.com/pageforge/recast/internal/classify/extract"
	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
	"github.com/pageforge/recast/internal/dom"
	"github.com/pageforge/recast/internal/logging"
)

// Guard defaults for malformed or adversarially deep input. A branch that
// exceeds either guard is replaced by a truncated marker while its siblings
// classify normally.
const (
	DefaultMaxDepth = 256
	DefaultMaxNodes = 100_000
)

// fallbackConfidence is assigned to generic "text" components emitted for
// unclassified elements with meaningful text.
const fallbackConfidence = 30

// Recorder observes classification outcomes. monitoring.Metrics implements
// it; a nil Recorder disables observation.
type Recorder interface {
	ObserveRun()
	ObserveComponent(t component.Type)
	ObserveDiagnostic(code string)
}

// Classifier walks an element tree depth-first, pre-order, resolving each
// element through the Matcher and Resolver and applying the containment
// policy: container types absorb their subtree into an attribute record and
// emit no child Components.
//
// A Classifier is immutable after New and safe for concurrent use on
// independent input trees.
type Classifier struct {
	matcher  *Matcher
	resolver Resolver
	style    dom.StyleFunc
	log      *logging.Logger
	recorder Recorder
	maxDepth int
	maxNodes int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithConfidenceFloor overrides the resolver's minimum confidence.
func WithConfidenceFloor(floor int) Option {
	return func(c *Classifier) { c.resolver.Floor = floor }
}

// WithStyleFunc wires an external style resolver. Defaults to
// dom.InlineStyles.
func WithStyleFunc(fn dom.StyleFunc) Option {
	return func(c *Classifier) { c.style = fn }
}

// WithLogger wires a logger. Defaults to a no-op logger.
func WithLogger(log *logging.Logger) Option {
	return func(c *Classifier) { c.log = log }
}

// WithRecorder wires an outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Classifier) { c.recorder = r }
}

// WithLimits overrides the recursion-depth and node-count guards.
func WithLimits(maxDepth, maxNodes int) Option {
	return func(c *Classifier) {
		if maxDepth > 0 {
			c.maxDepth = maxDepth
		}
		if maxNodes > 0 {
			c.maxNodes = maxNodes
		}
	}
}

// New builds a classifier over a frozen pattern registry.
func New(reg *pattern.Registry, opts ...Option) *Classifier {
	c := &Classifier{
		resolver: Resolver{Floor: DefaultConfidenceFloor},
		style:    dom.InlineStyles,
		log:      logging.NewNop(),
		maxDepth: DefaultMaxDepth,
		maxNodes: DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.matcher = NewMatcher(reg, c.log)
	return c
}

// Classify transforms an element tree into a Component tree. The returned
// Component is nil when the whole tree classifies to nothing. Diagnostics
// are always returned and describe every contained failure of the run.
func (c *Classifier) Classify(root *dom.ElementNode) (*component.Component, *Diagnostics) {
	diag := newDiagnostics()
	if c.recorder != nil {
		c.recorder.ObserveRun()
	}
	if root == nil {
		return nil, diag
	}

	budget := c.maxNodes
	comps := c.walk(root, 1, &budget, diag)

	if c.recorder != nil {
		for _, e := range diag.Entries {
			c.recorder.ObserveDiagnostic(e.Code)
		}
	}

	switch len(comps) {
	case 0:
		return nil, diag
	case 1:
		return comps[0], diag
	default:
		// The root element itself was unclassified but produced several
		// top-level components; wrap them to keep a single-rooted output.
		return &component.Component{
			Type:      component.TypeSection,
			Children:  comps,
			SourceRef: root.Path,
		}, diag
	}
}

// ignoredTags have no visual semantics and are dropped with their subtrees.
var ignoredTags = map[string]bool{
	"head": true, "meta": true, "link": true, "base": true, "title": true,
	"script": true, "style": true, "noscript": true, "template": true,
}

// walk classifies one element. It returns zero components for an omitted
// element, one for a classified (or text-fallback) element, and the hoisted
// child components for an unclassified structural wrapper.
func (c *Classifier) walk(el *dom.ElementNode, depth int, budget *int, diag *Diagnostics) []*component.Component {
	if ignoredTags[el.Tag] {
		return nil
	}
	if depth > c.maxDepth || *budget <= 0 {
		detail := "node budget exhausted"
		if depth > c.maxDepth {
			detail = "recursion depth limit exceeded"
		}
		diag.add(DiagRecursionLimit, el.Path, "", detail)
		c.log.Warn("classification truncated",
			zap.String("path", el.Path),
			zap.String("detail", detail))
		return []*component.Component{{
			Type:      component.TypeTruncated,
			SourceRef: el.Path,
		}}
	}
	*budget--

	style := c.style(el)
	candidates := c.matcher.Match(el, style, diag)
	winner, resolved := c.resolver.Resolve(candidates)

	if resolved && component.IsContainer(winner.Type) {
		comp := &component.Component{
			Type:       winner.Type,
			Confidence: winner.Confidence,
			Attributes: extract.Extract(winner.Type, el, style),
			SourceRef:  el.Path,
		}
		if c.recorder != nil {
			c.recorder.ObserveComponent(comp.Type)
		}
		return []*component.Component{comp}
	}

	var children []*component.Component
	for _, child := range el.Children {
		children = append(children, c.walk(child, depth+1, budget, diag)...)
	}

	if resolved {
		comp := &component.Component{
			Type:       winner.Type,
			Confidence: winner.Confidence,
			Children:   children,
			SourceRef:  el.Path,
		}
		if c.recorder != nil {
			c.recorder.ObserveComponent(comp.Type)
		}
		return []*component.Component{comp}
	}

	// Unclassified with meaningful text of its own: generic text fallback.
	if el.OwnText() != "" {
		comp := &component.Component{
			Type:       component.TypeText,
			Confidence: fallbackConfidence,
			Children:   children,
			SourceRef:  el.Path,
		}
		if c.recorder != nil {
			c.recorder.ObserveComponent(comp.Type)
		}
		return []*component.Component{comp}
	}

	// Unclassified structural wrapper: omit it and hoist whatever its
	// subtree produced. An empty, textless element yields nothing.
	return children
}
