package pattern

import (
	"fmt"

	"github.com/pageforge/recast/internal/component"
)

// Registry is the ordered pool of recognition patterns. Authoring stays
// split into per-category tables for readability, but resolution treats the
// pool as one flat, priority-ranked list; registration order matters only as
// the final tie-break.
//
// A Registry is mutable during wiring and must be frozen before it is shared
// across classification runs. Freezing is one-way.
type Registry struct {
	patterns []Pattern
	byType   map[component.Type][]int
	frozen   bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[component.Type][]int)}
}

// Register validates and appends a pattern. It fails fast on authoring
// mistakes with a MalformedPatternError and refuses registration after
// Freeze.
func (r *Registry) Register(p Pattern) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen: cannot register %q", p.Label())
	}
	if err := p.Validate(); err != nil {
		return err
	}
	r.byType[p.Type] = append(r.byType[p.Type], len(r.patterns))
	r.patterns = append(r.patterns, p)
	return nil
}

// MustRegister panics on registration failure. Intended for static built-in
// tables where a failure is a programming error.
func (r *Registry) MustRegister(p Pattern) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Freeze makes the registry immutable. After Freeze the registry is safe to
// share across concurrent classification runs without locking.
func (r *Registry) Freeze() *Registry {
	r.frozen = true
	return r
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}

// All returns every pattern in registration order. The returned slice is
// shared; callers must not mutate it.
func (r *Registry) All() []Pattern {
	return r.patterns
}

// At returns the pattern at registration index i.
func (r *Registry) At(i int) Pattern {
	return r.patterns[i]
}

// ForType returns the patterns registered for one component type, in
// registration order.
func (r *Registry) ForType(t component.Type) []Pattern {
	idx := r.byType[t]
	out := make([]Pattern, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.patterns[i])
	}
	return out
}
