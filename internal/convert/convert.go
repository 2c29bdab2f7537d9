// Copyright Civic Data Works, 2026. All rights reserved.

// Package convert implements the shapefile-to-GeoJSON pipeline: locate the
// dataset members, parse them, normalize and clean the attributes, build
// features with a derived display name and fixed style, and write the
// resulting FeatureCollection.
package convert

import (
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"

	"github.com/civicdata/district-tools/internal/shapefile"
	"github.com/civicdata/district-tools/pkg/types"
)

// Result summarizes a completed conversion run.
type Result struct {
	DestPath string
	Features int
	Fields   []string
}

// Run executes the whole pipeline once, synchronously, reporting per-stage
// progress to w. The first failure aborts the run; member streams are
// released on every exit path.
func Run(cfg types.ConvertConfig, w io.Writer) (*Result, error) {
	ds, err := shapefile.Locate(cfg.SourcePath)
	if err != nil {
		return nil, err
	}
	defer ds.Close()
	fmt.Fprintf(w, "located: %s\n", cfg.SourcePath)

	schema, records, err := shapefile.Read(ds)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "read: %d records, %d fields\n", len(records), len(schema))

	names := make([]string, len(schema))
	for i, field := range schema {
		names[i] = NormalizeFieldName(field)
	}

	features := make([]*geojson.Feature, 0, len(records))
	for i, rec := range records {
		f, err := BuildFeature(rec, names, cfg.Description, cfg.Style)
		if err != nil {
			return nil, fmt.Errorf("building feature %d: %w", i, err)
		}
		features = append(features, f)
	}

	fc := Assemble(features)

	dest := types.DeriveDestPath(cfg.DestPath, cfg.SourcePath, cfg.Description)
	if err := WriteFile(fc, dest); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "wrote: %s (%d features)\n", dest, len(features))

	result := &Result{DestPath: dest, Features: len(features), Fields: schema}

	manifest := Manifest{
		Source:      cfg.SourcePath,
		Dest:        dest,
		Description: cfg.Description.Default,
		Features:    result.Features,
		Fields:      schema,
	}
	if err := WriteManifest(manifest, ManifestPath(dest)); err != nil {
		return nil, fmt.Errorf("writing run manifest: %w", err)
	}

	return result, nil
}
