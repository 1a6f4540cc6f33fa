package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// prosodyPunct matches the punctuation runes that act as prosodic break
// hints downstream.
var prosodyPunct = regexp.MustCompile(`([.,!?;:])`)

// PreprocessForTTS runs the full pipeline on raw text:
// Normalize → ExpandNumbers → punctuation spacing → capitalize first letter.
//
// Punctuation is isolated with a single space on each side so the
// synthesizer sees it as its own token. Capitalization touches only the
// first rune, and only when it is a lowercase letter.
func PreprocessForTTS(text string) string {
	return Preprocess(text, true)
}

// Preprocess is PreprocessForTTS with control over abbreviation expansion.
func Preprocess(text string, expandAbbreviations bool) string {
	s := Normalize(text, expandAbbreviations)
	s = ExpandNumbers(s)

	s = prosodyPunct.ReplaceAllString(s, " $1 ")
	s = strings.Join(strings.Fields(s), " ")

	if s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if unicode.IsLower(r) {
			s = string(unicode.ToUpper(r)) + s[size:]
		}
	}

	return s
}

// ValidateVietnamese reports whether text is free of foreign-script
// alphabetic content: every letter must be ASCII or a Vietnamese letter.
// Empty input is valid.
func ValidateVietnamese(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) && r > 127 && !IsVietnameseLetter(r) {
			return false
		}
	}
	return true
}
