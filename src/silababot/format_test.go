package silababot

import (
	"github.com/kalexmills/silabas/src/dict"
	"github.com/kalexmills/silabas/src/silabas"
	"github.com/kalexmills/silabas/src/silabas/db"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"strings"
	"testing"
)

func TestFormatWord(t *testing.T) {
	assert.Equal(t, "me-sa", formatWord("mesa", true))
	assert.Equal(t, "__a__-bril", formatWord("abril", true))
	assert.Equal(t, "a-bril", formatWord("abril", false))
	assert.Equal(t, "po-__e__-ta", formatWord("poeta", true))
	assert.Equal(t, "BRR", formatWord("BRR", true))
}

func TestFormatText(t *testing.T) {
	assert.Equal(t, "mi  ma-má  me  mi-ma", formatText("Mi mamá me mima.", false))
	assert.Equal(t, "__o__-so", formatText("¡oso!", true))
	assert.Equal(t, "?", formatText(" ? ", true))
}

func TestFormatRound(t *testing.T) {
	out := formatRound(silabas.BuildRound{Target: "mesa", Syllables: []string{"sa", "me"}})
	assert.Contains(t, out, "`sa` `me`")
	assert.Contains(t, out, prefixAnswer)
}

func TestFormatProgress(t *testing.T) {
	assert.Contains(t, formatProgress(db.Progress{}), prefixBuild)
	assert.Equal(t, "Palabras armadas: 3 de 4 intentos (75%).", formatProgress(db.Progress{Attempts: 4, Solved: 3}))
}

func TestCheckAnswer(t *testing.T) {
	assert.True(t, checkAnswer("me sa", "mesa", silabas.DefaultTolerance))
	assert.True(t, checkAnswer("ma má", "mamá", silabas.DefaultTolerance))
	assert.True(t, checkAnswer("MAMA", "mamá", silabas.DefaultTolerance))
	assert.False(t, checkAnswer("sa me", "mesa", silabas.DefaultTolerance))
	assert.False(t, checkAnswer("", "mesa", silabas.DefaultTolerance))
}

func TestPickRound(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	round, err := pickRound("perro", r)
	assert.NoError(t, err)
	assert.Equal(t, "perro", round.Target)
	assert.ElementsMatch(t, []string{"pe", "rro"}, round.Syllables)

	round, err = pickRound("¡Casa!", r)
	assert.NoError(t, err)
	assert.Equal(t, "Casa", round.Target)

	_, err = pickRound("sol", r)
	assert.Error(t, err)

	lesson, _ := dict.FindLesson("ll")
	round, err = pickRound("LL", r)
	assert.NoError(t, err)
	assert.Contains(t, lesson.Buildable(), round.Target)
	assert.Equal(t, round.Target, strings.ToLower(round.Target))

	round, err = pickRound("", r)
	assert.NoError(t, err)
	assert.True(t, dict.IsWord(round.Target))
	assert.Greater(t, len(round.Syllables), 1)
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input, command, rest string
	}{
		{"!silabas mesa", "!silabas", "mesa"},
		{"  !ARMA  ", "!arma", ""},
		{"!respuesta me  sa ", "!respuesta", "me  sa"},
		{"!config\nhelp", "!config", "help"},
		{"hola", "hola", ""},
	}

	for _, tt := range tests {
		command, rest := splitCommand(tt.input)
		assert.Equal(t, tt.command, command, tt.input)
		assert.Equal(t, tt.rest, rest, tt.input)
	}
}
