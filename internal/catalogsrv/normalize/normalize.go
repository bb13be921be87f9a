// Package normalize provides the canonical string forms used for every
// case- and accent-insensitive comparison in the catalog. All uniqueness
// rules (names, codes, attribute values) are defined over these forms.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ForComparison lowers s and strips combining diacritical marks. Two strings
// are considered equal "insensitive to case and accents" iff their
// ForComparison forms are byte-equal.
func ForComparison(s string) string {
	folded, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// the transform chain cannot fail on valid UTF-8; fall back to the
		// lowered input for anything else
		return strings.ToLower(s)
	}
	return folded
}

// ForStorage is the canonical persisted form: ForComparison upper-cased.
func ForStorage(s string) string {
	return strings.ToUpper(ForComparison(s))
}

// IsBlank reports whether s is empty after trimming whitespace. "0" and
// "false" are values, not blanks.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Trim removes surrounding whitespace. Values are trimmed before any
// normalization or length check.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
