package usecase

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/usecase/dto"
)

// BuildGeoJSON строит слой набора данных и отдаёт его как FeatureCollection
func (uc *AnnotationUseCase) BuildGeoJSON(
	ctx context.Context,
	datasetID string,
	req dto.GeoJSONRequest,
) (*geojson.FeatureCollection, error) {
	layer, err := uc.BuildLayer(ctx, datasetID, req.LayerRequest)
	if err != nil {
		return nil, err
	}
	return LayerToGeoJSON(layer, req.Simplify), nil
}

// LayerToGeoJSON - LineString на ребро (или одна линия маршрута), Polygon на зону,
// Point на станцию и концы маршрута. Стиль лежит в properties.
func LayerToGeoJSON(layer *dto.LayerResponse, tolerance float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if layer.Polyline != nil && len(layer.Route) > 1 {
		line := make(orb.LineString, 0, len(layer.Route))
		for _, p := range layer.Route {
			line = append(line, p.Orb())
		}
		if tolerance > 0 {
			if s, ok := simplify.DouglasPeucker(tolerance).Simplify(line.Clone()).(orb.LineString); ok && len(s) >= 2 {
				line = s
			}
		}

		f := geojson.NewFeature(line)
		f.Properties["kind"] = "route"
		f.Properties["dataset_id"] = layer.DatasetID
		f.Properties["stroke"] = layer.Polyline.Color
		f.Properties["stroke-width"] = layer.Polyline.Weight
		f.Properties["stroke-opacity"] = layer.Polyline.Opacity
		fc.Append(f)
	}

	for _, e := range layer.Edges {
		f := geojson.NewFeature(orb.LineString{e.From.Orb(), e.To.Orb()})
		f.Properties["kind"] = "edge"
		f.Properties["index"] = e.Index
		f.Properties["vibration"] = e.Vibration
		f.Properties["band"] = string(e.Band)
		f.Properties["stroke"] = e.Color
		f.Properties["stroke-width"] = e.Weight
		f.Properties["stroke-opacity"] = e.Opacity
		fc.Append(f)
	}

	for _, z := range layer.Zones {
		f := geojson.NewFeature(z.Box.Orb().ToPolygon())
		f.Properties["kind"] = "zone"
		f.Properties["start_index"] = z.StartIndex
		f.Properties["end_index"] = z.EndIndex
		f.Properties["length_m"] = z.LengthMeters
		f.Properties["max_vibration"] = z.MaxVibration
		f.Properties["stroke"] = domain.BandHigh.Color()
		f.Properties["fill"] = domain.BandHigh.Color()
		f.Properties["fill-opacity"] = 0.3
		if z.Image != "" {
			f.Properties["image"] = z.Image
		}
		fc.Append(f)
	}

	for _, s := range layer.Stations {
		f := geojson.NewFeature(domain.Point{Lat: s.Lat, Lon: s.Lon}.Orb())
		f.Properties["kind"] = "station"
		f.Properties["name"] = s.Name
		f.Properties["activity"] = s.Activity
		f.Properties["radius"] = s.Radius
		f.Properties["tooltip"] = s.Tooltip
		f.Properties["marker-color"] = s.FillColor
		if s.Video != "" {
			f.Properties["video"] = s.Video
		}
		fc.Append(f)
	}

	endpoints := []struct {
		kind   string
		marker *dto.Marker
	}{
		{"start", layer.Start},
		{"end", layer.End},
	}
	for _, ep := range endpoints {
		m := ep.marker
		if m == nil {
			continue
		}
		f := geojson.NewFeature(m.Point.Orb())
		f.Properties["kind"] = ep.kind
		f.Properties["label"] = m.Label
		f.Properties["marker-color"] = m.Color
		fc.Append(f)
	}

	return fc
}
