package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper decomposes to NFD, drops combining marks and recomposes.
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name returns the canonical form of a team name used for tier
// matching: accents removed, upper-cased. Idempotent; empty input
// yields empty output.
func Name(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripper, s)
	if err != nil {
		// Malformed input: fall back to plain upper-casing.
		return strings.ToUpper(s)
	}
	return strings.ToUpper(out)
}
