package text

import (
	"strings"
	"unicode"
)

// Clean lowercases the input and strips every character that is not a
// letter, digit, whitespace or sentence punctuation (.!?). It is total
// and idempotent: cleaning already-cleaned text is a no-op.
func Clean(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			return r
		case r == '.' || r == '!' || r == '?':
			return r
		default:
			return -1
		}
	}, s)
}
