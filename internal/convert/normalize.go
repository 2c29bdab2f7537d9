// Copyright Civic Data Works, 2026. All rights reserved.

package convert

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// NormalizeFieldName converts a raw DBF field name to the camelCase
// convention used in the output properties: the whole name is lower-cased,
// then every underscore followed by a character collapses into the
// upper-cased character ("STALE_ID" -> "staleId"). A trailing underscore
// has nothing to consume and is kept as-is.
func NormalizeFieldName(name string) string {
	runes := []rune(strings.ToLower(name))
	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '_' && i+1 < len(runes) {
			i++
			b.WriteRune(unicode.ToUpper(runes[i]))
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// CleanProperties scrubs one record's property mapping. Text values are
// re-decoded to valid UTF-8, text holding only whitespace or NUL padding
// is dropped, and the
// legacy "id1" column is dropped unconditionally. Non-string values pass
// through untouched, zero values included. After the pass the result is
// guaranteed to contain an "id" key: a truthy "district" value from the
// original mapping is used as fallback, else the literal "(unknown)".
//
// CleanProperties never fails and is idempotent on its own output.
func CleanProperties(props map[string]any) map[string]any {
	cleaned := make(map[string]any, len(props))
	for name, value := range props {
		if name == "id1" {
			continue
		}
		switch v := value.(type) {
		case string:
			s := decodeText(v)
			if isBlank(s) {
				continue
			}
			cleaned[name] = s
		case []byte:
			s := decodeText(string(v))
			if isBlank(s) {
				continue
			}
			cleaned[name] = s
		default:
			cleaned[name] = value
		}
	}

	if _, ok := cleaned["id"]; !ok {
		if district, ok := props["district"]; ok && truthy(district) {
			cleaned["id"] = coerceText(district)
		} else {
			cleaned["id"] = "(unknown)"
		}
	}
	return cleaned
}

// decodeText returns s unchanged when it is already valid UTF-8, and
// otherwise re-decodes the bytes as Latin-1, the usual encoding of legacy
// DBF attribute tables.
func decodeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return decoded
}

// isBlank reports whether text holds nothing but whitespace and NUL
// bytes. NULs show up as padding in fixed-width DBF fields.
func isBlank(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	}) == ""
}

// coerceText normalizes a fallback id value to text form.
func coerceText(v any) any {
	switch t := v.(type) {
	case string:
		return decodeText(t)
	case []byte:
		return decodeText(string(t))
	default:
		return v
	}
}

// truthy reports whether a fallback value should be used as an id.
// Whitespace-only text is not truthy; any other non-nil, non-zero value is.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return !isBlank(t)
	case []byte:
		return !isBlank(string(t))
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
