// Copyright Civic Data Works, 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// DefaultDescription is the label used when --description is not supplied.
const DefaultDescription = "Districts"

// Description holds the derived forms of the free-text dataset label.
// The convert pipeline consumes Singular for display names and Kebab for
// destination-path derivation.
type Description struct {
	// Default is the label exactly as given (e.g. "School Districts").
	Default string `json:"default" yaml:"default"`

	// Singular is the label with a trailing "s" stripped, if present.
	Singular string `json:"singular" yaml:"singular"`

	// Plural is the label with an "s" appended, if absent.
	Plural string `json:"plural" yaml:"plural"`

	// Kebab is the lower-cased, dash-joined form (e.g. "school-districts").
	Kebab string `json:"kebab" yaml:"kebab"`

	// Snake is the lower-cased, underscore-joined form (e.g. "school_districts").
	Snake string `json:"snake" yaml:"snake"`
}

// DeriveDescription computes all label forms from a free-text label.
func DeriveDescription(label string) Description {
	singular := label
	if strings.HasSuffix(label, "s") {
		singular = strings.TrimSuffix(label, "s")
	}
	plural := label
	if !strings.HasSuffix(label, "s") {
		plural = label + "s"
	}
	words := strings.Fields(strings.ToLower(label))
	return Description{
		Default:  label,
		Singular: singular,
		Plural:   plural,
		Kebab:    strings.Join(words, "-"),
		Snake:    strings.Join(words, "_"),
	}
}

// IsDefault reports whether the description was left at its default label.
func (d Description) IsDefault() bool {
	return d.Default == DefaultDescription
}

// DeriveDestPath resolves the output path for a conversion. An explicit
// destination always wins. Otherwise a non-default description yields
// "<kebab>.geojson", and the fallback is the source basename with any
// ".zip" suffix removed plus ".geojson".
func DeriveDestPath(explicit, sourcePath string, desc Description) string {
	if explicit != "" {
		return explicit
	}
	if !desc.IsDefault() {
		return desc.Kebab + ".geojson"
	}
	base := filepath.Base(filepath.Clean(sourcePath))
	if strings.EqualFold(filepath.Ext(base), ".zip") {
		base = base[:len(base)-len(".zip")]
	}
	return base + ".geojson"
}
