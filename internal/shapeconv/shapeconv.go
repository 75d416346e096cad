// Package shapeconv converts administrative-boundary shapefiles into the
// GeoJSON geometry document the dashboard's map consumes.
package shapeconv

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// Convert reads a polygon shapefile and writes a GeoJSON FeatureCollection
// whose features carry the region name under the given property key.
// nameField selects the shapefile attribute holding the region name.
func Convert(shpPath, outPath, nameField, nameKey string) (int, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return 0, eris.Wrapf(err, "shapeconv: open shapefile %s", shpPath)
	}
	defer func() { _ = reader.Close() }()

	nameIdx := fieldIndex(reader, nameField)
	if nameIdx < 0 {
		return 0, eris.Errorf("shapeconv: field %q not found in %s", nameField, shpPath)
	}

	fc := &geojson.FeatureCollection{}
	var skipped int

	for reader.Next() {
		_, shape := reader.Shape()

		name := strings.TrimSpace(strings.TrimRight(reader.Attribute(nameIdx), "\x00"))
		g := shapeToGeom(shape)
		if name == "" || g == nil {
			skipped++
			continue
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   g,
			Properties: map[string]any{nameKey: name},
		})
	}

	if skipped > 0 {
		zap.L().Debug("shapeconv: skipped shapefile records", zap.Int("skipped", skipped))
	}
	if len(fc.Features) == 0 {
		return 0, eris.Errorf("shapeconv: no usable polygon features in %s", shpPath)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return 0, eris.Wrap(err, "shapeconv: marshal feature collection")
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, eris.Wrapf(err, "shapeconv: write %s", outPath)
	}

	return len(fc.Features), nil
}

// fieldIndex returns the index of a named field in the shapefile, or -1.
func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}

// shapeToGeom converts a shapefile polygon to a go-geom MultiPolygon.
func shapeToGeom(s shp.Shape) geom.T {
	p, ok := s.(*shp.Polygon)
	if !ok || p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			zap.L().Debug("shapeconv: skipping malformed ring", zap.Int32("part", i), zap.Error(err))
			continue
		}
		if err := mp.Push(poly); err != nil {
			zap.L().Debug("shapeconv: skipping malformed part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
