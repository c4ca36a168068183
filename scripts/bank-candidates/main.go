package main

import (
	"bufio"
	"fmt"
	"github.com/kalexmills/silabas/src/dict"
	"github.com/kalexmills/silabas/src/silabas"
	"os"
	"sort"
	"strings"
)

type Datasource struct {
	filename   string
	lineParser func(string) string
}

var sources = map[string]Datasource{
	"chat": {
		filename: "data/chat.csv.txt",
		lineParser: func(s string) string {
			tokens := strings.Split(s, ",")
			if len(tokens) < 4 {
				return ""
			}
			return strings.Trim(strings.Join(tokens[3:], ","), " \"")
		},
	},
	"plain": {
		filename:   "data/textos.txt",
		lineParser: func(s string) string { return s },
	},
}

func main() {
	name := "chat"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	source, ok := sources[name]
	if !ok {
		FatalError(fmt.Errorf("unknown source %s", name))
	}

	f, err := os.Open(source.filename)
	FatalError(err)
	defer f.Close()

	counts := make(map[string]int)
	s := bufio.NewScanner(f)

	for s.Scan() {
		str := strings.TrimSpace(s.Text())
		if str == "" {
			continue
		}
		for _, t := range silabas.SplitWords(source.lineParser(str)) {
			if skip(t) {
				continue
			}
			cleaned := silabas.Normalize(t)
			if cleaned == "" || dict.IsWord(cleaned) {
				continue
			}
			counts[cleaned]++
		}
	}
	FatalError(s.Err())

	type result struct {
		str   string
		count int
	}
	var results []result
	for s, count := range counts {
		if count == 1 {
			continue // we don't care about one-offs.
		}
		results = append(results, result{s, count})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].count == results[j].count {
			return results[i].str < results[j].str
		}
		return results[i].count > results[j].count
	})
	for _, result := range results {
		fmt.Println(result.str, strings.Join(silabas.Split(result.str), "-"), result.count)
	}
}

// skip reports whether a token is markup or a link rather than a word.
func skip(s string) bool {
	return strings.HasPrefix(s, "[") ||
		strings.HasPrefix(s, "<") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}

func FatalError(err error) {
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
}
