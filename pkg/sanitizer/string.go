// Package sanitizer normalizes user-entered strings before validation and
// storage. All functions are idempotent and never return errors; invalid
// input collapses to the empty string.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims leading/trailing whitespace and collapses internal
// whitespace runs to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}
	return result.String()
}

// NormalizeName normalizes a room display name. A name that is empty after
// normalization is invalid.
func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeDescription trims a free-text description; internal whitespace is
// kept as typed.
func NormalizeDescription(description string) string {
	return strings.TrimSpace(description)
}
