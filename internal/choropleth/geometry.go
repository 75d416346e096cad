// Package choropleth composes geometry features with resolved statistics and
// derived color tiers into a styled, interactive map document.
package choropleth

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/risk-atlas/internal/fetcher"
)

// ErrGeometryUnavailable reports that the geometry document could not be
// fetched or parsed. It is fatal only to the map widget, which renders a
// textual placeholder instead of a partially built map.
var ErrGeometryUnavailable = errors.New("choropleth: geometry unavailable")

// LoadGeometry fetches and parses the polygon feature collection describing
// region boundaries. The source is third-party and independently loaded; it
// is joined against the statistics dataset at render time only.
func LoadGeometry(ctx context.Context, f fetcher.Fetcher, url string) (*geojson.FeatureCollection, error) {
	body, err := f.DownloadFresh(ctx, url)
	if err != nil {
		zap.L().Error("choropleth: geometry fetch failed", zap.String("url", url), zap.Error(err))
		return nil, eris.Wrap(ErrGeometryUnavailable, "fetch")
	}
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	if err != nil {
		zap.L().Error("choropleth: geometry read failed", zap.String("url", url), zap.Error(err))
		return nil, eris.Wrap(ErrGeometryUnavailable, "read")
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		zap.L().Error("choropleth: geometry parse failed", zap.String("url", url), zap.Error(err))
		return nil, eris.Wrap(ErrGeometryUnavailable, "parse")
	}

	zap.L().Info("choropleth: geometry loaded",
		zap.String("url", url),
		zap.Int("features", len(fc.Features)),
	)
	return &fc, nil
}

// nameKeys lists the property keys that may carry a feature's region name,
// in priority order. The third-party geometry format is inconsistent about
// which one it uses.
var nameKeys = []string{"NAME_1", "name", "NAME"}

// FeatureName extracts the region name from a feature's properties, trying
// each known key in priority order. Returns "" when none is present.
func FeatureName(props map[string]any) string {
	for _, key := range nameKeys {
		if v, ok := props[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
