package silabas

import "strings"

// digraphs are letter pairs that always behave as a single consonant.
var digraphs = map[string]struct{}{
	"ch": {},
	"ll": {},
	"rr": {},
}

// Tokenize lowercases word and splits it into orthographic units, greedily merging
// digraphs. Joining the result reproduces strings.ToLower(word).
func Tokenize(word string) []string {
	runes := []rune(strings.ToLower(word))
	tokens := make([]string, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			pair := string(runes[i : i+2])
			if _, ok := digraphs[pair]; ok {
				tokens = append(tokens, pair)
				i++
				continue
			}
		}
		tokens = append(tokens, string(runes[i]))
	}
	return tokens
}
