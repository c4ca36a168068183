package silababot

import (
	"fmt"
	"github.com/kalexmills/silabas/src/silabas"
	"github.com/kalexmills/silabas/src/silabas/db"
	"strings"
)

// formatWord renders the syllables of word separated by dashes, underlining the ones
// that begin with a vowel when underline is set.
func formatWord(word string, underline bool) string {
	segments := silabas.Highlight(word)
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if underline && seg.Underline {
			parts = append(parts, "__"+seg.Text+"__")
		} else {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, "-")
}

func formatText(text string, underline bool) string {
	words := silabas.SplitWords(text)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, formatWord(trimPunctuation(w), underline))
	}
	return strings.Join(parts, "  ")
}

// trimPunctuation drops the Spanish opening and closing marks around a word.
func trimPunctuation(w string) string {
	trimmed := strings.Trim(w, "¡!¿?.,;:\"'()«»")
	if trimmed == "" {
		return w
	}
	return trimmed
}

func formatRound(round silabas.BuildRound) string {
	pieces := make([]string, 0, len(round.Syllables))
	for _, s := range round.Syllables {
		pieces = append(pieces, "`"+s+"`")
	}
	return fmt.Sprintf("Arma la palabra con estas sílabas: %s\nResponde con `%s` y las sílabas en orden.",
		strings.Join(pieces, " "), prefixAnswer)
}

func formatAnswer(target string) string {
	return fmt.Sprintf("La palabra era **%s** (%s).", target, formatWord(target, false))
}

func formatProgress(p db.Progress) string {
	if p.Attempts == 0 {
		return fmt.Sprintf("Aún no tienes intentos. Prueba con `%s`.", prefixBuild)
	}
	return fmt.Sprintf("Palabras armadas: %d de %d intentos (%d%%).", p.Solved, p.Attempts, p.Solved*100/p.Attempts)
}
