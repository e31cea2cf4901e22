package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/recast/internal/component"
)

func validPattern(name string) Pattern {
	return Pattern{
		Name:       name,
		Type:       component.TypeHeading,
		Confidence: 80,
		Priority:   PriorityExplicit,
		When:       PredicateSet{TagNames: []string{"h1"}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pattern)
		wantErr string
	}{
		{"valid", func(p *Pattern) {}, ""},
		{"unknown type", func(p *Pattern) { p.Type = "hologram" }, "unknown component type"},
		{"marker type rejected", func(p *Pattern) { p.Type = component.TypeTruncated }, "unknown component type"},
		{"confidence too high", func(p *Pattern) { p.Confidence = 101 }, "confidence 101 out of range"},
		{"confidence negative", func(p *Pattern) { p.Confidence = -1 }, "confidence -1 out of range"},
		{"priority out of range", func(p *Pattern) { p.Priority = 200 }, "priority 200 out of range"},
		{"empty predicate set", func(p *Pattern) { p.When = PredicateSet{} }, "matches everything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPattern("probe")
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var malformed *MalformedPatternError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_OrderAndLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(validPattern("first")))

	second := validPattern("second")
	second.Type = component.TypeButton
	second.When = PredicateSet{TagNames: []string{"button"}}
	require.NoError(t, reg.Register(second))

	require.NoError(t, reg.Register(validPattern("third")))

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "second", all[1].Name)
	assert.Equal(t, "third", all[2].Name)

	headings := reg.ForType(component.TypeHeading)
	require.Len(t, headings, 2)
	assert.Equal(t, "first", headings[0].Name)
	assert.Equal(t, "third", headings[1].Name)
}

func TestRegistry_RejectsMalformed(t *testing.T) {
	reg := NewRegistry()
	bad := validPattern("bad")
	bad.When = PredicateSet{}

	err := reg.Register(bad)
	require.Error(t, err)
	assert.Zero(t, reg.Len())
}

func TestRegistry_Freeze(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(validPattern("one")))

	reg.Freeze()
	assert.True(t, reg.Frozen())

	err := reg.Register(validPattern("late"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frozen")
	assert.Equal(t, 1, reg.Len())
}

func TestPredicateSet_Empty(t *testing.T) {
	assert.True(t, PredicateSet{}.Empty())
	assert.True(t, PredicateSet{Structure: &Structure{}}.Empty())
	assert.False(t, PredicateSet{AriaRole: "tab"}.Empty())
	assert.False(t, PredicateSet{DataAttributes: []string{"data-x"}}.Empty())
}
