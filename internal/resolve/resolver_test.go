package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/risk-atlas/internal/dataset"
)

func statsFixture() map[string]dataset.RegionStat {
	return map[string]dataset.RegionStat{
		"Odisha":                      {PriorityScore: 0.9},
		"Tamil Nadu":                  {PriorityScore: 0.5},
		"Jammu And Kashmir":           {PriorityScore: 0.7},
		"Andaman And Nicobar Islands": {PriorityScore: 0.4},
		"NCT of Delhi":                {PriorityScore: 0.6},
	}
}

func TestResolve_Exact(t *testing.T) {
	r := NewResolver(nil)
	stat, ok := r.Resolve("Odisha", statsFixture())
	require.True(t, ok)
	assert.InDelta(t, 0.9, stat.PriorityScore, 0.001)
}

func TestResolve_ExactWinsOverAlias(t *testing.T) {
	// "Delhi" has an alias entry pointing at "NCT of Delhi", but when the
	// dataset also carries a literal "Delhi" key the exact match must win.
	stats := statsFixture()
	stats["Delhi"] = dataset.RegionStat{PriorityScore: 0.11}

	r := NewResolver(nil)
	stat, ok := r.Resolve("Delhi", stats)
	require.True(t, ok)
	assert.InDelta(t, 0.11, stat.PriorityScore, 0.001)
}

func TestResolve_Alias(t *testing.T) {
	r := NewResolver(nil)
	stat, ok := r.Resolve("Orissa", statsFixture())
	require.True(t, ok)
	assert.InDelta(t, 0.9, stat.PriorityScore, 0.001)
}

func TestResolve_AliasToDelhi(t *testing.T) {
	r := NewResolver(nil)
	stat, ok := r.Resolve("Delhi", statsFixture())
	require.True(t, ok)
	assert.InDelta(t, 0.6, stat.PriorityScore, 0.001)
}

func TestResolve_FuzzyAmpersand(t *testing.T) {
	r := NewResolver(AliasTable{})
	stat, ok := r.Resolve("Jammu & Kashmir", statsFixture())
	require.True(t, ok)
	assert.InDelta(t, 0.7, stat.PriorityScore, 0.001)
}

func TestResolve_FuzzyContainment(t *testing.T) {
	// The shorter colloquial name is contained in the longer official key.
	r := NewResolver(AliasTable{})
	stat, ok := r.Resolve("Andaman and Nicobar", statsFixture())
	require.True(t, ok)
	assert.InDelta(t, 0.4, stat.PriorityScore, 0.001)
}

func TestResolve_FuzzyViaNormalizedAlias(t *testing.T) {
	// "Pondicherry" only matches through its alias "Puducherry".
	stats := map[string]dataset.RegionStat{
		"Puducherry UT": {PriorityScore: 0.3},
	}
	r := NewResolver(nil)
	stat, ok := r.Resolve("Pondicherry", stats)
	require.True(t, ok)
	assert.InDelta(t, 0.3, stat.PriorityScore, 0.001)
}

func TestResolve_NoMatch(t *testing.T) {
	r := NewResolver(nil)
	_, ok := r.Resolve("Atlantis", statsFixture())
	assert.False(t, ok)
}

func TestResolve_EmptyInputs(t *testing.T) {
	r := NewResolver(nil)
	_, ok := r.Resolve("", statsFixture())
	assert.False(t, ok)
	_, ok = r.Resolve("Odisha", nil)
	assert.False(t, ok)
}

func TestResolve_DeterministicFirstWins(t *testing.T) {
	// Two keys both satisfy the containment predicate; the lexicographically
	// first must win on every call.
	stats := map[string]dataset.RegionStat{
		"Goa":       {PriorityScore: 0.2},
		"Goa North": {PriorityScore: 0.8},
	}
	r := NewResolver(AliasTable{})
	for i := 0; i < 10; i++ {
		stat, ok := r.Resolve("goa", stats)
		require.True(t, ok)
		assert.InDelta(t, 0.2, stat.PriorityScore, 0.001)
	}
}
