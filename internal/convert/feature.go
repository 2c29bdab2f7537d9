// Copyright Civic Data Works, 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/civicdata/district-tools/internal/shapefile"
	"github.com/civicdata/district-tools/pkg/types"
)

// BuildFeature merges one record into a GeoJSON feature: normalized field
// names are zipped with the record's values, the properties are cleaned,
// the display name and style keys are merged in, and the guaranteed "id"
// property is promoted into the feature's own identifier slot.
func BuildFeature(rec shapefile.Record, names []string, desc types.Description, style types.Style) (*geojson.Feature, error) {
	props := make(map[string]any, len(names))
	n := min(len(names), len(rec.Values))
	for i := 0; i < n; i++ {
		props[names[i]] = rec.Values[i]
	}

	cleaned := CleanProperties(props)
	// One textual form for both the identifier slot and the display name.
	id := fmt.Sprintf("%v", cleaned["id"])
	delete(cleaned, "id")

	geom, err := toGeometry(rec.Shape)
	if err != nil {
		return nil, err
	}

	f := geojson.NewFeature(geom)
	f.ID = id
	for k, v := range cleaned {
		f.Properties[k] = v
	}
	f.Properties["name"] = desc.Singular + " " + id
	f.Properties["stroke"] = style.Stroke
	f.Properties["fill"] = style.Fill
	return f, nil
}
