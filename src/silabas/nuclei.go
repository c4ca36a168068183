package silabas

// nucleus is an inclusive span of token indices holding one syllable's vowels.
type nucleus struct {
	start, end int
}

func findNuclei(tokens []string) []nucleus {
	var result []nucleus
	for i := 0; i < len(tokens); {
		if !isVowel(tokens[i]) {
			i++
			continue
		}
		j := i
		for j+1 < len(tokens) && isVowel(tokens[j+1]) {
			j++
		}
		offset := i
		for _, size := range groupVowels(tokens[i : j+1]) {
			result = append(result, nucleus{start: offset, end: offset + size - 1})
			offset += size
		}
		i = j + 1
	}
	return result
}

// groupVowels partitions a run of vowels into nucleus lengths summing to len(run).
func groupVowels(run []string) []int {
	switch len(run) {
	case 0:
		return nil
	case 1:
		return []int{1}
	case 2:
		if isHiatus(run[0], run[1]) {
			return []int{1, 1}
		}
		return []int{2}
	}
	if isTriphthong(run[0], run[1], run[2]) {
		return append([]int{3}, groupVowels(run[3:])...)
	}
	return append(groupVowels(run[:2]), groupVowels(run[2:])...)
}

func isHiatus(a, b string) bool {
	if isStrong(a) && isStrong(b) {
		return true
	}
	return isWeak(a) && hasAccent(a) || isWeak(b) && hasAccent(b)
}

func isTriphthong(a, b, c string) bool {
	return isWeak(a) && !hasAccent(a) && isStrong(b) && isWeak(c) && !hasAccent(c)
}
