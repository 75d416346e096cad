// Package colorscale converts continuous priority scores into a small set of
// discrete risk tiers, scaled relative to the observed range of the current
// dataset rather than fixed absolute thresholds.
package colorscale

// Band is one discrete risk tier. Higher values mean higher risk.
type Band int

// Risk tiers, in ascending risk order. BandNoData marks regions whose score
// is exactly zero, which the upstream analysis uses to mean "no underlying
// data" rather than a real low-risk score.
const (
	BandNoData Band = iota
	BandStable
	BandModerate
	BandElevated
	BandCritical
)

// String returns the band's display label.
func (b Band) String() string {
	switch b {
	case BandStable:
		return "Stable"
	case BandModerate:
		return "Moderate"
	case BandElevated:
		return "Elevated"
	case BandCritical:
		return "Critical"
	default:
		return "No Data"
	}
}

// Fallback range bounds applied when the dataset carries no positive scores.
const (
	defaultMin = 0.3
	defaultMax = 0.4
)

// Scale assigns bands relative to the observed min/max of a score set.
// A Scale is immutable once built; Tier is a pure function of the queried
// score and carries no state across calls.
type Scale struct {
	Min float64
	Max float64
}

// NewScale computes the observed range of the given scores. Zero scores are
// excluded, since zero means "no data". An empty or all-zero score set falls
// back to the default bounds.
func NewScale(scores []float64) Scale {
	s := Scale{Min: defaultMin, Max: defaultMax}
	first := true
	for _, v := range scores {
		if v <= 0 {
			continue
		}
		if first {
			s.Min, s.Max = v, v
			first = false
			continue
		}
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}

// Tier returns the band for a single score. A score of exactly zero maps to
// BandNoData. Band boundaries sit at 25/50/75% of the observed range; a
// degenerate range (min == max) collapses every real score into BandStable.
func (s Scale) Tier(score float64) Band {
	if score == 0 {
		return BandNoData
	}

	r := s.Max - s.Min
	if r == 0 {
		r = 1
	}
	normalized := (score - s.Min) / r

	switch {
	case normalized > 0.75:
		return BandCritical
	case normalized > 0.50:
		return BandElevated
	case normalized > 0.25:
		return BandModerate
	default:
		return BandStable
	}
}

// LegendEntry is one swatch of the map legend.
type LegendEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Band  Band    `json:"band"`
}

// legendLabels are the display names for the four representative grades.
var legendLabels = [4]string{"Stable", "Moderate Risk", "Elevated Risk", "Critical Priority"}

// Legend returns four representative grades spanning the observed range,
// each classified by the same Tier function used for map features, so the
// legend's swatches are identical to what the map actually renders.
func (s Scale) Legend() []LegendEntry {
	r := s.Max - s.Min
	grades := [4]float64{
		s.Min,
		s.Min + r*0.3,
		s.Min + r*0.6,
		s.Max,
	}

	entries := make([]LegendEntry, 0, len(grades))
	for i, g := range grades {
		entries = append(entries, LegendEntry{
			Label: legendLabels[i],
			Value: g,
			Band:  s.Tier(g),
		})
	}
	return entries
}
