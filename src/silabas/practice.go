package silabas

import (
	"math/rand"
	"strings"
	"unicode/utf8"
)

const (
	DefaultTolerance = 0.6
	MinTolerance     = 0.3
	MaxTolerance     = 1.0
)

// Segment is one syllable of a highlighted word.
type Segment struct {
	Text      string
	Underline bool
}

// Highlight splits word into syllables, marking the ones that begin with a vowel.
func Highlight(word string) []Segment {
	syllables := Split(word)
	result := make([]Segment, 0, len(syllables))
	for _, s := range syllables {
		result = append(result, Segment{Text: s, Underline: startsWithVowel(s)})
	}
	return result
}

func startsWithVowel(s string) bool {
	r, _ := utf8.DecodeRuneInString(strings.ToLower(s))
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'á', 'é', 'í', 'ó', 'ú':
		return true
	}
	return false
}

// BuildRound is a build-a-word puzzle: the syllables of Target in shuffled order.
type BuildRound struct {
	Target    string
	Syllables []string
}

// Buildable reports whether word can be turned into a BuildRound.
func Buildable(word string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(word)) >= 2 && Count(word) > 1
}

// NewBuildRound shuffles the syllables of word using r. It returns false when the word
// has a single syllable.
func NewBuildRound(word string, r *rand.Rand) (BuildRound, bool) {
	if !Buildable(word) {
		return BuildRound{}, false
	}
	syllables := Split(word)
	r.Shuffle(len(syllables), func(i, j int) {
		syllables[i], syllables[j] = syllables[j], syllables[i]
	})
	return BuildRound{Target: word, Syllables: syllables}, true
}

// Score returns the fraction of the target's words found in answer, comparing
// normalized forms.
func Score(answer, target string) float64 {
	want := SplitWords(Normalize(target))
	if len(want) == 0 {
		return 0
	}
	wanted := make(map[string]struct{}, len(want))
	for _, w := range want {
		wanted[w] = struct{}{}
	}
	found := 0
	for _, w := range SplitWords(Normalize(answer)) {
		if _, ok := wanted[w]; ok {
			found++
		}
	}
	return float64(found) / float64(len(want))
}

// Accept reports whether answer scores at least tolerance against target.
func Accept(answer, target string, tolerance float64) bool {
	return Score(answer, target) >= ClampTolerance(tolerance)
}

// ClampTolerance bounds t to [MinTolerance, MaxTolerance]; zero means DefaultTolerance.
func ClampTolerance(t float64) float64 {
	switch {
	case t == 0:
		return DefaultTolerance
	case t < MinTolerance:
		return MinTolerance
	case t > MaxTolerance:
		return MaxTolerance
	}
	return t
}
