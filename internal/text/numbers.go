package text

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// digitRun matches maximal runs of decimal digits. Word-boundary checks are
// done separately in ExpandNumbers because the regexp \b assertion is
// ASCII-only and would treat a Vietnamese letter as a boundary.
var digitRun = regexp.MustCompile(`[0-9]+`)

// NumberToWords converts n to its Vietnamese numeral phrase.
//
// The grammar covers units, teens (with the "lăm" irregular for 15), tens
// (with "mốt"/"lăm" irregulars), hundreds (with the "lẻ" filler), and
// thousands up to 999,999 (with the "không trăm" filler). Larger magnitudes
// fall back to reading the digits one at a time. Negative numbers are
// prefixed with "âm".
func NumberToWords(n int64) string {
	if n < 0 {
		return "âm " + NumberToWords(-n)
	}

	switch {
	case n == 0:
		return "không"

	case n < 10:
		return numberWords[n]

	case n < 20:
		if n == 10 {
			return "mười"
		}
		ones := n % 10
		if ones == 5 {
			return "mười lăm"
		}
		return "mười " + numberWords[ones]

	case n < 100:
		tens := n / 10
		ones := n % 10
		result := numberWords[tens] + " mươi"
		switch ones {
		case 0:
			return result
		case 1:
			return result + " mốt"
		case 5:
			return result + " lăm"
		default:
			return result + " " + numberWords[ones]
		}

	case n < 1000:
		hundreds := n / 100
		remainder := n % 100
		result := numberWords[hundreds] + " trăm"
		switch {
		case remainder == 0:
			return result
		case remainder < 10:
			return result + " lẻ " + numberWords[remainder]
		default:
			return result + " " + NumberToWords(remainder)
		}

	case n < 1000000:
		thousands := n / 1000
		remainder := n % 1000
		result := NumberToWords(thousands) + " nghìn"
		switch {
		case remainder == 0:
			return result
		case remainder < 100:
			return result + " không trăm " + NumberToWords(remainder)
		default:
			return result + " " + NumberToWords(remainder)
		}
	}

	// Millions and above: read digit by digit.
	digits := strconv.FormatInt(n, 10)
	words := make([]string, 0, len(digits))
	for _, d := range digits {
		words = append(words, numberWords[d-'0'])
	}
	return strings.Join(words, " ")
}

// ExpandNumbers rewrites standalone digit runs in text as Vietnamese numeral
// phrases. A run adjacent to a letter, digit, or underscore is left alone —
// it is part of an alphanumeric token such as a product code. Runs too large
// for int64 are also left untouched.
func ExpandNumbers(text string) string {
	matches := digitRun.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(text[last:start])
		last = end

		run := text[start:end]
		if wordRuneBefore(text, start) || wordRuneAt(text, end) {
			b.WriteString(run)
			continue
		}
		n, err := strconv.ParseInt(run, 10, 64)
		if err != nil {
			b.WriteString(run)
			continue
		}
		b.WriteString(NumberToWords(n))
	}
	b.WriteString(text[last:])

	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordRuneBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

func wordRuneAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}
