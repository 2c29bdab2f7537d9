// Copyright Civic Data Works, 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest records the outcome of one conversion run. It is written as a
// YAML sidecar next to the GeoJSON output so downstream tooling can tell
// where a file came from without re-reading the source dataset.
type Manifest struct {
	Source      string   `yaml:"source"`
	Dest        string   `yaml:"dest"`
	Description string   `yaml:"description"`
	Features    int      `yaml:"features"`
	Fields      []string `yaml:"fields"`
	ConvertedAt string   `yaml:"converted_at"`
}

// ManifestPath returns the sidecar path for a destination file.
func ManifestPath(dest string) string {
	return dest + ".meta.yaml"
}

// WriteManifest marshals the manifest and writes it to the sidecar path.
func WriteManifest(m Manifest, path string) error {
	m.ConvertedAt = time.Now().UTC().Format(time.RFC3339)
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling run manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest reads a run manifest back from a sidecar file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing run manifest %s: %w", path, err)
	}
	return &m, nil
}
