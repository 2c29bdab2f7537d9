// Copyright Civic Data Works, 2026. All rights reserved.

package shapefile

import (
	"fmt"
	"strings"
)

// InvalidPathError reports a source path that does not exist or is neither
// a zip archive nor a directory.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid source path %s: %s", e.Path, e.Reason)
}

// MissingInputError reports that a required shapefile member (the .shp
// geometry file or the .dbf attribute file) was not found among the
// candidates at the source path. Found lists everything that was
// discovered, so the user can see what the locator considered.
type MissingInputError struct {
	Source  string
	Missing []string
	Found   []string
}

func (e *MissingInputError) Error() string {
	found := "none"
	if len(e.Found) > 0 {
		found = strings.Join(e.Found, ", ")
	}
	return fmt.Sprintf("missing required %s in %s (files found: %s)",
		strings.Join(e.Missing, " and "), e.Source, found)
}
