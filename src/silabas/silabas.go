package silabas

import "strings"

// onsets are the consonant pairs that may open a syllable together.
var onsets = map[string]struct{}{
	"pr": {}, "pl": {}, "br": {}, "bl": {}, "cr": {}, "cl": {}, "dr": {}, "tr": {},
	"fr": {}, "fl": {}, "gr": {}, "gl": {}, "ch": {}, "ll": {}, "rr": {},
}

// Split divides a Spanish word into its orthographic syllables. Syllables are returned
// lowercased; a word without vowels is returned whole and unmodified.
func Split(word string) []string {
	if word == "" {
		return nil
	}
	tokens := Tokenize(word)
	nuclei := findNuclei(tokens)
	if len(nuclei) == 0 {
		return []string{word}
	}
	spans := syllableSpans(tokens, nuclei)
	result := make([]string, 0, len(spans))
	for _, span := range spans {
		result = append(result, strings.Join(span, ""))
	}
	return result
}

// Count returns the number of syllables in word.
func Count(word string) int {
	return len(Split(word))
}

func syllableSpans(tokens []string, nuclei []nucleus) [][]string {
	spans := make([][]string, 0, len(nuclei))
	start := 0
	for k := 0; k < len(nuclei)-1; k++ {
		left, right := nuclei[k], nuclei[k+1]
		cut := left.end + 1 + closingConsonants(tokens[left.end+1:right.start])
		spans = append(spans, tokens[start:cut])
		start = cut
	}
	return append(spans, tokens[start:])
}

// closingConsonants returns how many of the bridge tokens between two nuclei stay
// with the preceding syllable.
func closingConsonants(bridge []string) int {
	switch {
	case len(bridge) <= 1:
		return 0
	case len(bridge) == 2:
		if _, ok := onsets[bridge[0]+bridge[1]]; ok {
			return 0
		}
		return 1
	default:
		// the last two always open the next syllable, clustered or not
		return len(bridge) - 2
	}
}
