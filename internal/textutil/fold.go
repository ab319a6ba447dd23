package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns the case-folded form of value. Whitespace is kept, so callers
// trim user queries themselves. Two strings are equal ignoring case exactly
// when their folded forms are equal.
func Fold(value string) string {
	if value == "" {
		return ""
	}
	return cases.Fold().String(value)
}

// EqualFold reports whether a and b match after case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// TitleCase capitalizes each word of value for display, e.g. "sci-fi" -> "Sci-Fi".
func TitleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return cases.Title(language.Und).String(value)
}
