package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is returned when nothing usable is left of the input.
const Fallback = "foto"

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Make turns free text into a lowercase ASCII, hyphen separated file name
// fragment. "Panadería La 14" becomes "panaderia-la-14".
func Make(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		return Fallback
	}

	out := strings.ToLower(folded)
	out = disallowed.ReplaceAllString(out, "")
	out = separators.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")

	if out == "" {
		return Fallback
	}
	return out
}
