package silabas

import (
	"github.com/stretchr/testify/assert"
	"math/rand"
	"sort"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"¡Mamá!", "mama"},
		{"  Pingüino  ", "pinguino"},
		{"Niño", "nino"},
		{"Mi mamá me mima.", "mi mama me mima"},
		{"¿Qué?", "que"},
		{"123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), tt.input)
	}
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"mi", "mamá", "me", "mima"}, SplitWords("  mi mamá\tme  mima "))
	assert.Empty(t, SplitWords("   "))
}

func TestIsSentence(t *testing.T) {
	assert.True(t, IsSentence("mi mamá"))
	assert.False(t, IsSentence("  mamá "))
	assert.False(t, IsSentence(""))
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, []Segment{
		{Text: "a", Underline: true},
		{Text: "bril", Underline: false},
	}, Highlight("abril"))
	assert.Equal(t, []Segment{
		{Text: "me", Underline: false},
		{Text: "sa", Underline: false},
	}, Highlight("mesa"))
	assert.Equal(t, []Segment{
		{Text: "ár", Underline: true},
		{Text: "bol", Underline: false},
	}, Highlight("Árbol"))
	assert.Empty(t, Highlight(""))
}

func TestBuildable(t *testing.T) {
	assert.True(t, Buildable("mesa"))
	assert.False(t, Buildable("sol"))
	assert.False(t, Buildable("a"))
	assert.False(t, Buildable(""))
}

func TestNewBuildRound(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	round, ok := NewBuildRound("mariposa", r)
	assert.True(t, ok)
	assert.Equal(t, "mariposa", round.Target)

	got := append([]string(nil), round.Syllables...)
	sort.Strings(got)
	assert.Equal(t, []string{"ma", "ri", "po", "sa"}, sortedCopy(Split("mariposa")))
	assert.Equal(t, sortedCopy(Split("mariposa")), got)

	_, ok = NewBuildRound("pan", r)
	assert.False(t, ok)
}

func sortedCopy(s []string) []string {
	result := append([]string(nil), s...)
	sort.Strings(result)
	return result
}

func TestScore(t *testing.T) {
	assert.Equal(t, 1.0, Score("mamá", "mama"))
	assert.Equal(t, 1.0, Score("Mesa!", "mesa"))
	assert.Equal(t, 0.0, Score("mesa", "masa"))
	assert.Equal(t, 0.5, Score("mi mamá", "mi papá"))
	assert.Equal(t, 0.0, Score("mesa", "¡!"))
	assert.Equal(t, 0.0, Score("", "mesa"))
}

func TestAccept(t *testing.T) {
	assert.True(t, Accept("mesa", "mesa", DefaultTolerance))
	assert.False(t, Accept("mi papá", "mi mamá", DefaultTolerance))
	assert.True(t, Accept("mi papá", "mi mamá", 0.5))
	assert.True(t, Accept("mi papá me", "mi mamá me", 0))
}

func TestClampTolerance(t *testing.T) {
	assert.Equal(t, DefaultTolerance, ClampTolerance(0))
	assert.Equal(t, MinTolerance, ClampTolerance(0.1))
	assert.Equal(t, MaxTolerance, ClampTolerance(1.5))
	assert.Equal(t, 0.75, ClampTolerance(0.75))
}
