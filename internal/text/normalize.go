package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type abbrevPattern struct {
	re        *regexp.Regexp
	expansion string
}

// abbrevPatterns holds one compiled pattern per abbreviation table entry.
// Each pattern anchors the literal to a token boundary (start of string or
// a preceding whitespace rune, captured so it survives replacement) and
// matches the literal case-insensitively.
var abbrevPatterns = func() []abbrevPattern {
	patterns := make([]abbrevPattern, 0, len(abbreviations))
	for _, a := range abbreviations {
		patterns = append(patterns, abbrevPattern{
			re:        regexp.MustCompile(`(?i)(^|\s)` + regexp.QuoteMeta(a.literal)),
			expansion: a.expansion,
		})
	}
	return patterns
}()

// Normalize canonicalizes raw Vietnamese text for synthesis:
//
//  1. Compose Unicode to NFC so tone marks become single code points.
//  2. Expand known abbreviations at token boundaries (optional).
//  3. Collapse whitespace runs to single spaces.
//  4. Drop every rune that is not ASCII, a Vietnamese letter, allowed
//     punctuation, or some other Unicode letter.
//
// The function is total: it never fails, and empty input is returned as-is.
func Normalize(text string, expandAbbreviations bool) string {
	if text == "" {
		return text
	}

	// NFC must come first: abbreviation matching and the letter-set filter
	// both assume composed tone marks.
	text = norm.NFC.String(text)

	if expandAbbreviations {
		for _, p := range abbrevPatterns {
			text = p.re.ReplaceAllString(text, "${1}"+p.expansion)
		}
	}

	text = strings.Join(strings.Fields(text), " ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case strings.ContainsRune(allowedPunct, r):
			b.WriteRune(r)
		case r < 128:
			b.WriteRune(r)
		case IsVietnameseLetter(r):
			b.WriteRune(r)
		case unicode.IsLetter(r):
			// Letters outside the enumerated set are kept rather than
			// dropped, so unusual script variants survive.
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
