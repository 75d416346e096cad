// Package render turns the loaded dataset into widget payloads and fans them
// out to named render targets, isolating each widget's failures so one broken
// section can never blank the rest of the dashboard.
package render

import "github.com/sells-group/risk-atlas/internal/colorscale"

// Theme carries every color and font a chart or map payload may reference.
// It is passed explicitly into each builder; there is no ambient global
// styling state.
type Theme struct {
	Gold     string `json:"gold"`
	Sky      string `json:"sky"`
	Emerald  string `json:"emerald"`
	Rose     string `json:"rose"`
	Slate    string `json:"slate"`
	Midnight string `json:"midnight"`
	Grid     string `json:"grid"`
	Font     string `json:"font"`
}

// DefaultTheme returns the dashboard's standard palette.
func DefaultTheme() Theme {
	return Theme{
		Gold:     "#fbbf24",
		Sky:      "#0ea5e9",
		Emerald:  "#10b981",
		Rose:     "#f43f5e",
		Slate:    "#94a3b8",
		Midnight: "#1e293b",
		Grid:     "rgba(255, 255, 255, 0.05)",
		Font:     "Plus Jakarta Sans",
	}
}

// BandColor maps a risk band to its fill color under this theme.
func (t Theme) BandColor(b colorscale.Band) string {
	switch b {
	case colorscale.BandStable:
		return t.Emerald
	case colorscale.BandModerate:
		return t.Sky
	case colorscale.BandElevated:
		return t.Gold
	case colorscale.BandCritical:
		return t.Rose
	default:
		return t.Midnight
	}
}
