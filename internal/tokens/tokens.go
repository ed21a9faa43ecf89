// Package tokens provides a cheap token-count estimate for prompt text.
// It is a heuristic for showing budget hints, not a tokenizer.
package tokens

import (
	"strings"
	"unicode/utf8"
)

// Estimate approximates the token count of text as one token per four
// characters of the trimmed input. Characters are counted as runes so
// multibyte text does not inflate the estimate.
func Estimate(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text)) / 4
}
