// Copyright Civic Data Works, 2026. All rights reserved.

package shapefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"
)

// writeTestShapefile writes a two-field point shapefile (ID1, DISTRICT)
// with the given rows into dir under base.shp/.dbf.
func writeTestShapefile(t *testing.T, dir, base string, rows [][2]string) {
	t.Helper()
	w, err := shp.Create(filepath.Join(dir, base+".shp"), shp.POINT)
	if err != nil {
		t.Fatal(err)
	}
	w.SetFields([]shp.Field{
		shp.StringField("ID1", 10),
		shp.StringField("DISTRICT", 10),
	})
	for i, row := range rows {
		w.Write(&shp.Point{X: float64(i), Y: float64(i)})
		w.WriteAttribute(i, 0, row[0])
		w.WriteAttribute(i, 1, row[1])
	}
	w.Close()

	// go-shp emits the attribute file as "<base>dbf" with no dot;
	// rename it so the locator can match the .dbf extension.
	undotted := filepath.Join(dir, base+"dbf")
	if _, err := os.Stat(undotted); err == nil {
		if err := os.Rename(undotted, filepath.Join(dir, base+".dbf")); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	writeTestShapefile(t, dir, "wards", [][2]string{
		{"x", "5"},
		{"y", "12"},
	})

	ds, err := Locate(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()

	schema, records, err := Read(ds)
	if err != nil {
		t.Fatal(err)
	}

	if len(schema) != 2 || schema[0] != "ID1" || schema[1] != "DISTRICT" {
		t.Errorf("schema = %v, want [ID1 DISTRICT]", schema)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}
	if records[0].Values[1] != "5" {
		t.Errorf("first district = %q, want 5", records[0].Values[1])
	}
	if records[1].Values[1] != "12" {
		t.Errorf("second district = %q, want 12", records[1].Values[1])
	}
	if _, ok := records[0].Shape.(*shp.Point); !ok {
		t.Errorf("shape type = %T, want *shp.Point", records[0].Shape)
	}
}

func TestReadStripsFieldPadding(t *testing.T) {
	dir := t.TempDir()
	writeTestShapefile(t, dir, "wards", [][2]string{
		{"stale", "5"}, // values are shorter than the 10-byte columns
	})

	ds, err := Locate(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()

	_, records, err := Read(ds)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range records[0].Values {
		if strings.ContainsAny(v, "\x00") || strings.HasSuffix(v, " ") {
			t.Errorf("value %q still carries fixed-width padding", v)
		}
	}
	if records[0].Values[1] != "5" {
		t.Errorf("district = %q, want 5", records[0].Values[1])
	}
}

func TestReadValuesAlignWithSchema(t *testing.T) {
	dir := t.TempDir()
	writeTestShapefile(t, dir, "wards", [][2]string{{"a", "b"}})

	ds, err := Locate(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()

	schema, records, err := Read(ds)
	if err != nil {
		t.Fatal(err)
	}
	if len(records[0].Values) != len(schema) {
		t.Errorf("values per record = %d, want %d", len(records[0].Values), len(schema))
	}
}
