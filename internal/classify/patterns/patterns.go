package patterns

import (
	"github.com/pageforge/recast/internal/classify/pattern"
)

// Seed registers the static per-category tables into reg. Category order is
// fixed because registration order is the final resolution tie-break.
func Seed(reg *pattern.Registry) error {
	groups := [][]pattern.Pattern{
		interactivePatterns(),
		commercePatterns(),
		mediaPatterns(),
		navigationPatterns(),
		contentPatterns(),
		layoutPatterns(),
	}
	for _, group := range groups {
		for _, p := range group {
			if err := reg.Register(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Builtin constructs and freezes the canonical registry from the static
// tables.
func Builtin() (*pattern.Registry, error) {
	reg := pattern.NewRegistry()
	if err := Seed(reg); err != nil {
		return nil, err
	}
	return reg.Freeze(), nil
}

// MustBuiltin panics when a built-in table is malformed. Static tables are
// covered by tests, so a failure here is a programming error.
func MustBuiltin() *pattern.Registry {
	reg, err := Builtin()
	if err != nil {
		panic(err)
	}
	return reg
}
