// Package textutil holds the two string forms used across the parser: a
// normalized key for keyword matching and a cleaned form for display values.
// The two are never interchangeable; output fields always come from Clean.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks,
// so "informações" folds to "informacoes".
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize derives the case- and accent-insensitive key used for keyword
// matching: accents stripped, extraction artifacts removed, lowercased, runs
// of whitespace collapsed to one space.
func Normalize(s string) string {
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	return collapse(strings.ToLower(stripArtifacts(s)))
}

// Clean prepares a line for display: artifacts removed and whitespace
// collapsed, but casing and accents kept as printed on the receipt.
func Clean(s string) string {
	return collapse(stripArtifacts(s))
}

func stripArtifacts(s string) string {
	s = strings.ReplaceAll(s, "\uFFFD", "")
	return strings.ReplaceAll(s, "\uFEFF", "")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
