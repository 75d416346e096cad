package colorscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScale_ObservedRange(t *testing.T) {
	s := NewScale([]float64{0.5, 0.3, 0.9, 0.7})
	assert.InDelta(t, 0.3, s.Min, 0.001)
	assert.InDelta(t, 0.9, s.Max, 0.001)
}

func TestNewScale_ExcludesZeroScores(t *testing.T) {
	s := NewScale([]float64{0, 0.5, 0, 0.8})
	assert.InDelta(t, 0.5, s.Min, 0.001)
	assert.InDelta(t, 0.8, s.Max, 0.001)
}

func TestNewScale_EmptyFallsBackToDefaults(t *testing.T) {
	s := NewScale(nil)
	assert.InDelta(t, 0.3, s.Min, 0.001)
	assert.InDelta(t, 0.4, s.Max, 0.001)
}

func TestTier_Boundaries(t *testing.T) {
	s := Scale{Min: 0.0001, Max: 1.0001}
	assert.Equal(t, BandStable, s.Tier(0.2))
	assert.Equal(t, BandModerate, s.Tier(0.3))
	assert.Equal(t, BandElevated, s.Tier(0.6))
	assert.Equal(t, BandCritical, s.Tier(0.8))
}

func TestTier_ZeroMeansNoData(t *testing.T) {
	s := NewScale([]float64{0.3, 0.9})
	assert.Equal(t, BandNoData, s.Tier(0))
}

func TestTier_Monotonic(t *testing.T) {
	s := NewScale([]float64{0.31, 0.47, 0.62, 0.9})
	prev := BandStable
	for score := 0.01; score <= 1.0; score += 0.01 {
		band := s.Tier(score)
		assert.GreaterOrEqual(t, int(band), int(prev),
			"tier must be non-decreasing with score (score=%0.2f)", score)
		prev = band
	}
}

func TestTier_DegenerateRange(t *testing.T) {
	s := NewScale([]float64{5, 5, 5})
	// All scores collapse to the lowest band; no division by zero.
	assert.Equal(t, BandStable, s.Tier(5))
	assert.Equal(t, BandStable, s.Tier(5.1))
}

func TestTier_Idempotent(t *testing.T) {
	s := NewScale([]float64{0.3, 0.9})
	for i := 0; i < 5; i++ {
		assert.Equal(t, BandCritical, s.Tier(0.9))
	}
}

func TestLegend_MatchesMapTiers(t *testing.T) {
	s := NewScale([]float64{0.3, 0.9})
	legend := s.Legend()
	assert.Len(t, legend, 4)

	// Each swatch carries the same band a map feature with that exact score
	// would receive.
	for _, entry := range legend {
		assert.Equal(t, s.Tier(entry.Value), entry.Band, "legend swatch %q diverges from map tier", entry.Label)
	}

	assert.Equal(t, BandStable, legend[0].Band)
	assert.Equal(t, BandModerate, legend[1].Band)
	assert.Equal(t, BandElevated, legend[2].Band)
	assert.Equal(t, BandCritical, legend[3].Band)
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "No Data", BandNoData.String())
	assert.Equal(t, "Stable", BandStable.String())
	assert.Equal(t, "Critical", BandCritical.String())
}

func TestScenario_OdishaCritical(t *testing.T) {
	// min=0.3, max=0.9 observed; a 0.9 score normalizes to 1.0 > 0.75.
	s := NewScale([]float64{0.3, 0.9})
	assert.Equal(t, BandCritical, s.Tier(0.9))
}
