// Copyright Civic Data Works, 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// WriteFile serializes the collection to path, overwriting any existing
// file. HTML escaping is off so non-ASCII text in cleaned properties is
// preserved literally. The handle is released on all exit paths; a failure
// mid-encode may leave a truncated file behind.
func WriteFile(fc *geojson.FeatureCollection, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating destination %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("serializing feature collection to %s: %w", path, err)
	}
	return nil
}
