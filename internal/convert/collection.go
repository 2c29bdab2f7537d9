// Copyright Civic Data Works, 2026. All rights reserved.

package convert

import "github.com/paulmach/orb/geojson"

// crsName declares longitude/latitude ordering per OGC 1.3.
const crsName = "urn:ogc:def:crs:OGC:1.3:CRS84"

// Assemble wraps the features, in the order they were read, into a
// FeatureCollection carrying an explicit CRS84 declaration.
func Assemble(features []*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	fc.ExtraMembers = geojson.Properties{
		"crs": map[string]any{
			"type": "name",
			"properties": map[string]any{
				"name": crsName,
			},
		},
	}
	return fc
}
