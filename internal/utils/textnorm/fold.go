// Package textnorm folds free text typed by users into comparable keys.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold trims s, strips diacritics and lowercases it, so "Liquidação" and
// "LIQUIDACAO" compare equal.
func Fold(s string) string {
	// transform.Chain keeps state, build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return strings.ToLower(out)
}

// In reports whether the folded s is one of keys. Keys must already be folded.
func In(s string, keys ...string) bool {
	f := Fold(s)
	for _, k := range keys {
		if f == k {
			return true
		}
	}
	return false
}
