package choropleth

import (
	"encoding/json"
	"strconv"

	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/risk-atlas/internal/colorscale"
	"github.com/sells-group/risk-atlas/internal/dataset"
	"github.com/sells-group/risk-atlas/internal/render"
	"github.com/sells-group/risk-atlas/internal/resolve"
)

// HoverState is a feature's interaction state. Styling is a pure function of
// (band, state), so restoring a feature on pointer-leave is a recomputation
// of its base style, never an incremental undo.
type HoverState int

// The two interaction states of a feature.
const (
	StateBase HoverState = iota
	StateHighlighted
)

// Style is the visual styling applied to one region polygon.
type Style struct {
	FillColor   string  `json:"fill_color"`
	BorderColor string  `json:"border_color"`
	Weight      int     `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fill_opacity"`
}

// Popup is the information panel attached to a resolved feature.
type Popup struct {
	Region         string `json:"region"`
	RiskIndex      string `json:"risk_index"`
	FiscalRisk     string `json:"fiscal_risk"`
	ProjectedSurge string `json:"projected_surge"`
	MaintenanceGap string `json:"maintenance_gap"`
	MigrationChurn string `json:"migration_churn"`
}

// FeatureView is one styled region of the map document.
type FeatureView struct {
	Name      string          `json:"name"`
	Band      string          `json:"band"`
	Score     float64         `json:"score"`
	Style     Style           `json:"style"`
	Highlight Style           `json:"highlight"`
	// Popup is nil for unresolved features: they stay styled but
	// non-interactive rather than showing a misleading empty panel.
	Popup    *Popup          `json:"popup,omitempty"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
}

// LegendSwatch is one entry of the map legend.
type LegendSwatch struct {
	Label string  `json:"label"`
	Color string  `json:"color"`
	Value float64 `json:"value"`
}

// MapDocument is the fully composed choropleth payload.
type MapDocument struct {
	Features    []FeatureView  `json:"features,omitempty"`
	Legend      []LegendSwatch `json:"legend,omitempty"`
	Center      [2]float64     `json:"center"`
	Zoom        int            `json:"zoom"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// Default map viewport, roughly centered on India.
var (
	defaultCenter = [2]float64{22.5937, 78.9629}
	defaultZoom   = 5
)

// placeholderText is shown inside the map panel when geometry is missing.
const placeholderText = "Geospatial Data Unavailable"

// Placeholder returns the document rendered when the geometry source fails:
// a textual notice instead of a partially built map.
func Placeholder() *MapDocument {
	return &MapDocument{
		Center:      defaultCenter,
		Zoom:        defaultZoom,
		Placeholder: placeholderText,
	}
}

// Renderer styles geometry features from resolved statistics.
type Renderer struct {
	resolver *resolve.Resolver
	theme    render.Theme
}

// NewRenderer creates a Renderer using the given resolver and theme.
func NewRenderer(resolver *resolve.Resolver, theme render.Theme) *Renderer {
	return &Renderer{resolver: resolver, theme: theme}
}

// StyleFor returns the style for a band in the given interaction state.
// Calling it with StateBase always yields the exact style computed at
// initial render, regardless of how many hover cycles preceded the call.
func (r *Renderer) StyleFor(band colorscale.Band, state HoverState) Style {
	if state == StateHighlighted {
		return Style{
			FillColor:   r.theme.BandColor(band),
			BorderColor: "#ffffff",
			Weight:      2,
			Opacity:     1,
			FillOpacity: 1,
		}
	}
	return Style{
		FillColor:   r.theme.BandColor(band),
		BorderColor: "rgba(255, 255, 255, 0.44)",
		Weight:      1,
		Opacity:     1,
		FillOpacity: 0.8,
	}
}

// Build joins the geometry features against the statistics mapping and
// returns the styled map document. The join is best-effort: features that
// resolve to no statistic render in the no-data style without a popup.
func (r *Renderer) Build(stats map[string]dataset.RegionStat, fc *geojson.FeatureCollection) *MapDocument {
	scores := make([]float64, 0, len(stats))
	for _, s := range stats {
		scores = append(scores, s.PriorityScore)
	}
	scale := colorscale.NewScale(scores)

	doc := &MapDocument{
		Center: defaultCenter,
		Zoom:   defaultZoom,
		Legend: r.buildLegend(scale),
	}

	misses := 0
	for _, f := range fc.Features {
		name := FeatureName(f.Properties)
		stat, ok := r.resolver.Resolve(name, stats)

		score := 0.0
		if ok {
			score = stat.PriorityScore
		}
		band := scale.Tier(score)

		view := FeatureView{
			Name:      name,
			Band:      band.String(),
			Score:     score,
			Style:     r.StyleFor(band, StateBase),
			Highlight: r.StyleFor(band, StateHighlighted),
		}

		if ok {
			view.Popup = buildPopup(name, stat)
		} else {
			misses++
		}

		if f.Geometry != nil {
			if raw, err := geojson.Marshal(f.Geometry); err == nil {
				view.Geometry = raw
			}
		}

		doc.Features = append(doc.Features, view)
	}

	zap.L().Info("choropleth: map built",
		zap.Int("features", len(doc.Features)),
		zap.Int("unresolved", misses),
	)
	return doc
}

// buildLegend colors the scale's representative grades with the same band
// styling the features receive.
func (r *Renderer) buildLegend(scale colorscale.Scale) []LegendSwatch {
	entries := scale.Legend()
	swatches := make([]LegendSwatch, 0, len(entries))
	for _, e := range entries {
		swatches = append(swatches, LegendSwatch{
			Label: e.Label,
			Color: r.theme.BandColor(e.Band),
			Value: e.Value,
		})
	}
	return swatches
}

// buildPopup formats a resolved feature's information panel.
func buildPopup(name string, stat dataset.RegionStat) *Popup {
	return &Popup{
		Region:         name,
		RiskIndex:      formatScore(stat.PriorityScore),
		FiscalRisk:     render.FormatCrore(stat.FiscalRisk),
		ProjectedSurge: render.FormatNumber(float64(stat.ProjectedSurge)),
		MaintenanceGap: render.FormatPercent(stat.MaintenanceGap),
		MigrationChurn: render.FormatPercent(stat.MigrationChurn),
	}
}

// formatScore renders a priority score with three decimals.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
