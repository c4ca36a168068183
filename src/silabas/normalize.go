package silabas

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"strings"
	"unicode"
)

var notLetterOrSpace = runes.Predicate(func(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsSpace(r)
})

// Normalize lowercases s, strips diacritics and punctuation and trims the result, so
// that "¡Mamá!" and "mama" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(notLetterOrSpace), norm.NFC)
	result, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.TrimSpace(strings.ToLower(s))
	}
	return strings.TrimSpace(result)
}

// SplitWords splits a lesson item on whitespace.
func SplitWords(s string) []string {
	return strings.Fields(s)
}

// IsSentence reports whether s holds more than one word.
func IsSentence(s string) bool {
	return strings.IndexFunc(strings.TrimSpace(s), unicode.IsSpace) >= 0
}
