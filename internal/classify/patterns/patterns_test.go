package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/component"
)

func TestBuiltin(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)
	assert.True(t, reg.Frozen())
	assert.Greater(t, reg.Len(), 40, "every component family needs coverage")
}

func TestBuiltin_TablesAreWellFormed(t *testing.T) {
	reg := MustBuiltin()

	names := make(map[string]bool, reg.Len())
	for _, p := range reg.All() {
		assert.True(t, component.Known(p.Type), "pattern %q targets unknown type %q", p.Name, p.Type)
		assert.False(t, names[p.Name], "duplicate pattern name %q", p.Name)
		names[p.Name] = true

		switch p.Priority {
		case pattern.PriorityExplicit, pattern.PriorityStructure, pattern.PriorityKeyword, pattern.PriorityGeneric:
		default:
			t.Errorf("pattern %q has off-tier priority %d", p.Name, p.Priority)
		}
	}
}

func TestBuiltin_EveryContainerTypeCovered(t *testing.T) {
	reg := MustBuiltin()

	for _, typ := range component.All {
		if !component.IsContainer(typ) {
			continue
		}
		assert.NotEmpty(t, reg.ForType(typ), "container type %q has no pattern", typ)
	}
}

func TestBuiltin_ExplicitPatternsRegisterBeforeGenericOnes(t *testing.T) {
	// Within a type, the first-registered pattern should be the most
	// specific one so registration order can serve as the final tie-break.
	reg := MustBuiltin()

	for _, typ := range component.All {
		ps := reg.ForType(typ)
		for i := 1; i < len(ps); i++ {
			assert.GreaterOrEqual(t, ps[i-1].Priority, ps[i].Priority,
				"type %q: pattern %q registered after lower-priority %q", typ, ps[i-1].Name, ps[i].Name)
		}
	}
}

func TestSeed_RejectsAfterFreeze(t *testing.T) {
	reg := pattern.NewRegistry()
	reg.Freeze()
	assert.Error(t, Seed(reg))
}
