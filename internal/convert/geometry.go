// Copyright Civic Data Works, 2026. All rights reserved.

package convert

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// toGeometry re-expresses a parsed shape as a GeoJSON geometry. Z and M
// variants are flattened to their planar coordinates; reprojection is
// deliberately out of scope, so coordinates pass through as stored.
func toGeometry(s shp.Shape) (orb.Geometry, error) {
	switch v := s.(type) {
	case *shp.Point:
		return orb.Point{v.X, v.Y}, nil
	case *shp.PointM:
		return orb.Point{v.X, v.Y}, nil
	case *shp.PointZ:
		return orb.Point{v.X, v.Y}, nil
	case *shp.MultiPoint:
		return toMultiPoint(v.Points), nil
	case *shp.MultiPointM:
		return toMultiPoint(v.Points), nil
	case *shp.MultiPointZ:
		return toMultiPoint(v.Points), nil
	case *shp.PolyLine:
		return toLine(v.Parts, v.Points), nil
	case *shp.PolyLineM:
		return toLine(v.Parts, v.Points), nil
	case *shp.PolyLineZ:
		return toLine(v.Parts, v.Points), nil
	case *shp.Polygon:
		return toPolygon(v.Parts, v.Points), nil
	case *shp.PolygonM:
		return toPolygon(v.Parts, v.Points), nil
	case *shp.PolygonZ:
		return toPolygon(v.Parts, v.Points), nil
	default:
		return nil, fmt.Errorf("unsupported shape type %T", s)
	}
}

func toMultiPoint(pts []shp.Point) orb.MultiPoint {
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = orb.Point{p.X, p.Y}
	}
	return mp
}

// splitParts slices the flat point array into its per-part segments using
// the shapefile part-offset table.
func splitParts(parts []int32, pts []shp.Point) [][]shp.Point {
	if len(parts) == 0 {
		return [][]shp.Point{pts}
	}
	segments := make([][]shp.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(pts))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || int(start) > len(pts) || end < start {
			continue
		}
		segments = append(segments, pts[start:end])
	}
	return segments
}

func toLine(parts []int32, pts []shp.Point) orb.Geometry {
	segments := splitParts(parts, pts)
	lines := make(orb.MultiLineString, 0, len(segments))
	for _, seg := range segments {
		line := make(orb.LineString, len(seg))
		for i, p := range seg {
			line[i] = orb.Point{p.X, p.Y}
		}
		lines = append(lines, line)
	}
	if len(lines) == 1 {
		return lines[0]
	}
	return lines
}

// toPolygon groups rings into polygons: an outer (clockwise, in shapefile
// winding) ring starts a new polygon and subsequent counter-clockwise
// rings are its holes. A single polygon is returned unwrapped.
func toPolygon(parts []int32, pts []shp.Point) orb.Geometry {
	var polygons orb.MultiPolygon
	for _, seg := range splitParts(parts, pts) {
		ring := make(orb.Ring, len(seg))
		for i, p := range seg {
			ring[i] = orb.Point{p.X, p.Y}
		}
		if clockwise(seg) || len(polygons) == 0 {
			polygons = append(polygons, orb.Polygon{ring})
		} else {
			last := len(polygons) - 1
			polygons[last] = append(polygons[last], ring)
		}
	}
	if len(polygons) == 1 {
		return polygons[0]
	}
	return polygons
}

// clockwise computes ring winding via the shoelace sum.
func clockwise(pts []shp.Point) bool {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += (pts[j].X - pts[i].X) * (pts[j].Y + pts[i].Y)
	}
	return sum > 0
}
