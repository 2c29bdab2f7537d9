// Copyright Civic Data Works, 2026. All rights reserved.

package convert

import (
	"reflect"
	"testing"
)

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"stale_id", "staleId"},
		{"NAME", "name"},
		{"DISTRICT", "district"},
		{"ID1", "id1"},
		{"WARD_NUM", "wardNum"},
		{"a_b_c", "aBC"},
		{"_leading", "Leading"},
		{"trailing_", "trailing_"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeFieldName(tt.in); got != tt.want {
				t.Errorf("NormalizeFieldName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanProperties(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]any
	}{
		{
			name: "drops whitespace-only text",
			in:   map[string]any{"id": "7", "note": "   \t"},
			want: map[string]any{"id": "7"},
		},
		{
			name: "drops NUL-padded blank text",
			in:   map[string]any{"id": "7", "note": "  \x00\x00"},
			want: map[string]any{"id": "7"},
		},
		{
			name: "NUL-padded district is not a usable fallback",
			in:   map[string]any{"district": "\x00\x00 "},
			want: map[string]any{"id": "(unknown)"},
		},
		{
			name: "keeps falsy non-string values",
			in:   map[string]any{"id": "7", "count": 0},
			want: map[string]any{"id": "7", "count": 0},
		},
		{
			name: "drops id1 unconditionally",
			in:   map[string]any{"id": "7", "id1": "anything"},
			want: map[string]any{"id": "7"},
		},
		{
			name: "id falls back to district",
			in:   map[string]any{"district": "12"},
			want: map[string]any{"district": "12", "id": "12"},
		},
		{
			name: "id falls back to unknown without district",
			in:   map[string]any{"name0": "East Ward"},
			want: map[string]any{"name0": "East Ward", "id": "(unknown)"},
		},
		{
			name: "blank district is not a usable fallback",
			in:   map[string]any{"district": "  "},
			want: map[string]any{"id": "(unknown)"},
		},
		{
			name: "empty input still gains an id",
			in:   map[string]any{},
			want: map[string]any{"id": "(unknown)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanProperties(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CleanProperties(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanPropertiesIdempotent(t *testing.T) {
	in := map[string]any{
		"id1":      "legacy",
		"district": "12",
		"blank":    " ",
		"ward":     "East",
	}
	once := CleanProperties(in)
	twice := CleanProperties(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the mapping: %v vs %v", once, twice)
	}
}

func TestCleanPropertiesDecodesLatin1(t *testing.T) {
	// 0xe9 is "é" in Latin-1 and invalid as a standalone UTF-8 byte.
	in := map[string]any{"id": "3", "name0": "Pe\xe9r"}
	got := CleanProperties(in)
	if got["name0"] != "Peér" {
		t.Errorf("name0 = %q, want %q", got["name0"], "Peér")
	}
}
