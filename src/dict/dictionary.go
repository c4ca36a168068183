package dict

import (
	_ "embed"
	"fmt"
	"github.com/kalexmills/silabas/src/silabas"
	"strings"
)

//go:embed data/lecciones.txt
var lessonsFile string

type Lesson struct {
	ID    string
	Words []string
}

// Buildable returns the words of the lesson which can be used as build-a-word puzzles.
func (l Lesson) Buildable() []string {
	var result []string
	for _, w := range l.Words {
		if silabas.Buildable(w) {
			result = append(result, w)
		}
	}
	return result
}

var lessons []Lesson

var lessonsByID map[string]int

var words map[string]struct{}

// Lessons returns every lesson in the bank, in file order.
func Lessons() []Lesson {
	return lessons
}

func FindLesson(id string) (Lesson, bool) {
	idx, ok := lessonsByID[strings.ToLower(id)]
	if !ok {
		return Lesson{}, false
	}
	return lessons[idx], true
}

// IsWord reports whether word appears in any lesson, ignoring case and accents.
func IsWord(word string) bool {
	_, ok := words[silabas.Normalize(word)]
	return ok
}

func init() {
	lessonsByID = make(map[string]int)
	words = make(map[string]struct{})

	lines := strings.Split(lessonsFile, "\n")
	for lineNum, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) == 1 {
			panic(fmt.Errorf("could not parse line %d: lesson %s has no words", lineNum, tokens[0]))
		}
		id := strings.ToLower(tokens[0])
		if _, ok := lessonsByID[id]; ok {
			panic(fmt.Errorf("could not parse line %d: duplicate lesson %s", lineNum, id))
		}
		lessonsByID[id] = len(lessons)
		lessons = append(lessons, Lesson{ID: id, Words: tokens[1:]})

		for _, w := range tokens[1:] {
			words[silabas.Normalize(w)] = struct{}{}
		}
	}
}
