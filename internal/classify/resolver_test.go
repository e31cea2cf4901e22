package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/recast/internal/component"
)

func TestResolver_PriorityDominatesConfidence(t *testing.T) {
	r := Resolver{Floor: DefaultConfidenceFloor}

	winner, ok := r.Resolve([]Candidate{
		{Type: component.TypeSpacer, Confidence: 99, Priority: 80, Pattern: 0},
		{Type: component.TypeDivider, Confidence: 60, Priority: 90, Pattern: 1},
	})
	require.True(t, ok)
	assert.Equal(t, component.TypeDivider, winner.Type)
}

func TestResolver_ConfidenceWithinTier(t *testing.T) {
	r := Resolver{Floor: DefaultConfidenceFloor}

	winner, ok := r.Resolve([]Candidate{
		{Type: component.TypeTable, Confidence: 90, Priority: 90, Pattern: 0},
		{Type: component.TypePricingTable, Confidence: 95, Priority: 90, Pattern: 1},
	})
	require.True(t, ok)
	assert.Equal(t, component.TypePricingTable, winner.Type)
}

func TestResolver_RegistrationOrderBreaksFullTies(t *testing.T) {
	r := Resolver{Floor: DefaultConfidenceFloor}

	winner, ok := r.Resolve([]Candidate{
		{Type: component.TypeBadge, Confidence: 80, Priority: 50, Pattern: 3},
		{Type: component.TypeIcon, Confidence: 80, Priority: 50, Pattern: 7},
	})
	require.True(t, ok)
	assert.Equal(t, component.TypeBadge, winner.Type)

	// Input order must not matter.
	winner, ok = r.Resolve([]Candidate{
		{Type: component.TypeIcon, Confidence: 80, Priority: 50, Pattern: 7},
		{Type: component.TypeBadge, Confidence: 80, Priority: 50, Pattern: 3},
	})
	require.True(t, ok)
	assert.Equal(t, component.TypeBadge, winner.Type)
}

func TestResolver_ConfidenceFloor(t *testing.T) {
	r := Resolver{Floor: 50}

	_, ok := r.Resolve([]Candidate{
		{Type: component.TypeCard, Confidence: 49, Priority: 90, Pattern: 0},
	})
	assert.False(t, ok, "a sole sub-floor candidate never wins")

	winner, ok := r.Resolve([]Candidate{
		{Type: component.TypeCard, Confidence: 49, Priority: 90, Pattern: 0},
		{Type: component.TypeText, Confidence: 55, Priority: 30, Pattern: 1},
	})
	require.True(t, ok)
	assert.Equal(t, component.TypeText, winner.Type)
}

func TestResolver_NoCandidates(t *testing.T) {
	r := Resolver{Floor: 50}
	_, ok := r.Resolve(nil)
	assert.False(t, ok)
}
