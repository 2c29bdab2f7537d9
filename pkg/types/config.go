// Copyright Civic Data Works, 2026. All rights reserved.

// Package types defines the shared configuration and label types consumed
// by the conversion pipeline, the run catalog, and the scrape launcher.
package types

// Style holds the fixed simple-style keys merged into every feature's
// properties. Defaults follow the GeoJSON simple-style spec.
type Style struct {
	// Stroke is the outline color as a hex string (e.g. "#555555").
	Stroke string `json:"stroke" yaml:"stroke"`

	// Fill is the fill color as a hex string.
	Fill string `json:"fill" yaml:"fill"`
}

// DefaultStyle returns the simple-style default colors.
func DefaultStyle() Style {
	return Style{Stroke: "#555555", Fill: "#555555"}
}

// ConvertConfig holds settings for one shapefile-to-GeoJSON conversion run.
type ConvertConfig struct {
	// SourcePath is a zip archive or directory holding the shapefile members.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// DestPath is the output GeoJSON path. Empty means derive from the
	// description or the source basename.
	DestPath string `json:"dest_path" yaml:"dest_path"`

	// Description labels the dataset ("Districts", "School Districts", ...).
	Description Description `json:"description" yaml:"description"`

	// Style is merged into every feature's properties.
	Style Style `json:"style" yaml:"style"`
}

// CatalogConfig holds settings for the conversion run catalog.
type CatalogConfig struct {
	// Path is the SQLite database file for the catalog.
	Path string `json:"path" yaml:"path"`

	// MaxResults caps how many runs `catalog list` returns (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ScrapeConfig holds settings for the voter-list crawl launcher.
type ScrapeConfig struct {
	// Job is the crawl job name handed to the crawling framework.
	Job string `json:"job" yaml:"job"`

	// LogLevel is the framework log verbosity (default "INFO").
	LogLevel string `json:"log_level" yaml:"log_level"`
}
