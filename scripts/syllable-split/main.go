package main

import (
	"bufio"
	"fmt"
	"github.com/kalexmills/silabas/src/silabas"
	"os"
	"sort"
	"strings"
)

const Filename = "data/palabras.txt"

func main() {
	filename := Filename
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}
	words, err := readWords(filename)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
	entries := splitAll(words)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].word < entries[j].word
	})

	for _, entry := range entries {
		fmt.Printf("%s %s %d\n", entry.word, strings.Join(entry.syllables, "-"), len(entry.syllables))
	}
	os.Exit(0)
}

// readWords returns every whitespace-separated word in the file; lines starting with # are comments.
func readWords(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, silabas.SplitWords(line)...)
	}
	return words, s.Err()
}

func splitAll(words []string) []Entry {
	seen := make(map[string]struct{})
	var result []Entry
	for _, word := range words {
		lower := strings.ToLower(word)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		result = append(result, Entry{lower, silabas.Split(lower)})
	}
	return result
}

type Entry struct {
	word      string
	syllables []string
}
