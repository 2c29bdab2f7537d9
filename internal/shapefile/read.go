// Copyright Civic Data Works, 2026. All rights reserved.

package shapefile

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// Record pairs one geometry shape with its attribute values, positionally
// aligned with the schema returned by Read.
type Record struct {
	Shape  shp.Shape
	Values []string
}

// Read parses the dataset's geometry and attribute streams into the
// ordered field schema and the ordered record list. The parser exposes
// only real DBF columns, so the format's leading deletion-flag
// pseudo-field never appears in the schema. Any parse failure is fatal.
//
// Read does not close the dataset's streams; that remains the caller's
// job via Dataset.Close.
func Read(ds *Dataset) ([]string, []Record, error) {
	sr := shp.SequentialReaderFromExt(ds.Geometry, ds.Attributes)

	fields := sr.Fields()
	schema := make([]string, len(fields))
	for i, f := range fields {
		schema[i] = f.String()
	}

	var records []Record
	for sr.Next() {
		_, shape := sr.Shape()
		values := make([]string, len(fields))
		for i := range fields {
			// DBF fields are fixed width; the raw content carries
			// trailing NUL or space padding.
			values[i] = strings.TrimRight(sr.Attribute(i), "\x00 ")
		}
		records = append(records, Record{Shape: shape, Values: values})
	}
	if err := sr.Err(); err != nil {
		return nil, nil, fmt.Errorf("parsing shapefile from %s: %w", ds.Source, err)
	}

	return schema, records, nil
}
