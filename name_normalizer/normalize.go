// Package name_normalizer reduces arbitrary Unicode personal names to the
// restricted alphabet A-Z used by the sequence encoder.
//
// Cyrillic and Greek letters are transliterated rune by rune, accented Latin
// letters lose their diacritics, and everything else that is not a letter
// A-Z is dropped. Mixed-script names are handled per rune, not per language.
package name_normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns name reduced to uppercase A-Z. An empty or fully
// non-alphabetic name yields "".
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	// 1. Script transliteration
	var latin strings.Builder
	latin.Grow(len(name))
	for _, r := range name {
		if s, ok := transliterate(r); ok {
			latin.WriteString(s)
		} else {
			latin.WriteRune(r)
		}
	}

	// 2. Canonical decomposition, combining marks removed
	stripped := stripMarks(latin.String())

	// 3. + 4. Uppercase and keep A-Z only
	upper := strings.ToUpper(stripped)
	var out strings.Builder
	out.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		if c := upper[i]; c >= 'A' && c <= 'Z' {
			out.WriteByte(c)
		}
	}
	return out.String()
}

// stripMarks decomposes s (NFD) and drops nonspacing marks. Transformers
// carry state, so a fresh chain is built per call.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
