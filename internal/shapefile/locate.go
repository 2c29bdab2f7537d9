// Copyright Civic Data Works, 2026. All rights reserved.

// Package shapefile locates the member files of an Esri Shapefile dataset
// and reads them into an in-memory schema plus geometry/attribute records.
// Binary parsing is delegated to github.com/jonas-p/go-shp; this package
// owns member discovery, stream lifecycle, and the error taxonomy.
package shapefile

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Member extensions, matched case-insensitively. Geometry and attributes
// are required; the index and projection members are optional.
const (
	extGeometry   = ".shp"
	extIndex      = ".shx"
	extAttributes = ".dbf"
	extProjection = ".prj"
)

// Dataset holds open streams for the members of one shapefile dataset.
// Geometry and Attributes are always non-nil; Index and Projection may be
// nil. Close releases every stream and must run whether or not the
// conversion succeeds.
type Dataset struct {
	Source     string
	Geometry   io.ReadCloser
	Attributes io.ReadCloser
	Index      io.ReadCloser
	Projection io.ReadCloser
}

// Close releases all member streams, returning the first close error.
// Streams sourced from a zip archive are in-memory buffers; closing them
// is a no-op but is done uniformly so callers need not care.
func (d *Dataset) Close() error {
	var first error
	for _, rc := range []io.ReadCloser{d.Geometry, d.Attributes, d.Index, d.Projection} {
		if rc == nil {
			continue
		}
		if err := rc.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Locate resolves path into a Dataset. A regular file must be a zip
// archive; anything else must be a directory whose immediate children are
// searched. When several candidates share an extension the first in sorted
// listing order wins.
func Locate(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &InvalidPathError{Path: path, Reason: "no such file or directory"}
		}
		return nil, fmt.Errorf("inspecting source path %s: %w", path, err)
	}

	if info.IsDir() {
		return locateDir(path)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return locateZip(path)
	}
	return nil, &InvalidPathError{Path: path, Reason: "not a zip archive or a directory"}
}

// locateDir opens member files from the immediate children of dir. On any
// failure the already-opened handles are released before returning.
func locateDir(dir string) (*Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing source directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	picked := pickMembers(names)
	if err := requireMembers(dir, picked, names); err != nil {
		return nil, err
	}

	ds := &Dataset{Source: dir}
	for ext, dst := range memberSlots(ds) {
		name, ok := picked[ext]
		if !ok {
			continue
		}
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			ds.Close()
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		*dst = f
	}
	return ds, nil
}

// locateZip reads member entries out of the archive into memory, so the
// archive handle itself is released before Locate returns.
func locateZip(path string) (*Dataset, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer zr.Close()

	byName := make(map[string]*zip.File, len(zr.File))
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		byName[f.Name] = f
		names = append(names, f.Name)
	}
	sort.Strings(names)

	picked := pickMembers(names)
	if err := requireMembers(path, picked, names); err != nil {
		return nil, err
	}

	ds := &Dataset{Source: path}
	for ext, dst := range memberSlots(ds) {
		name, ok := picked[ext]
		if !ok {
			continue
		}
		data, err := readZipEntry(byName[name])
		if err != nil {
			ds.Close()
			return nil, fmt.Errorf("reading archive entry %s: %w", name, err)
		}
		*dst = io.NopCloser(bytes.NewReader(data))
	}
	return ds, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// pickMembers maps each member extension to the first matching name in
// listing order. Extra candidates for the same role are ignored.
func pickMembers(names []string) map[string]string {
	picked := make(map[string]string, 4)
	for _, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		switch ext {
		case extGeometry, extIndex, extAttributes, extProjection:
			if _, ok := picked[ext]; !ok {
				picked[ext] = name
			}
		}
	}
	return picked
}

// requireMembers checks that the geometry and attribute members were found.
func requireMembers(source string, picked map[string]string, found []string) error {
	var missing []string
	if _, ok := picked[extGeometry]; !ok {
		missing = append(missing, "geometry file (.shp)")
	}
	if _, ok := picked[extAttributes]; !ok {
		missing = append(missing, "attribute file (.dbf)")
	}
	if len(missing) > 0 {
		return &MissingInputError{Source: source, Missing: missing, Found: found}
	}
	return nil
}

// memberSlots maps member extensions to their Dataset fields.
func memberSlots(ds *Dataset) map[string]*io.ReadCloser {
	return map[string]*io.ReadCloser{
		extGeometry:   &ds.Geometry,
		extIndex:      &ds.Index,
		extAttributes: &ds.Attributes,
		extProjection: &ds.Projection,
	}
}

// IsInputError reports whether err is one of the locator's typed input
// errors, as opposed to an environmental failure.
func IsInputError(err error) bool {
	var ip *InvalidPathError
	var mi *MissingInputError
	return errors.As(err, &ip) || errors.As(err, &mi)
}
