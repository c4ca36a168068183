package silabas

type vowelClass uint8

const (
	strong vowelClass = 1 << iota
	weak
	accented
)

var vowels = map[string]vowelClass{
	"a": strong,
	"e": strong,
	"o": strong,
	"á": strong | accented,
	"é": strong | accented,
	"ó": strong | accented,
	"i": weak,
	"u": weak,
	"ü": weak,
	"í": weak | accented,
	"ú": weak | accented,
}

func isVowel(t string) bool {
	_, ok := vowels[t]
	return ok
}

func isStrong(t string) bool {
	return vowels[t]&strong > 0
}

func isWeak(t string) bool {
	return vowels[t]&weak > 0
}

func hasAccent(t string) bool {
	return vowels[t]&accented > 0
}
