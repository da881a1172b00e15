// Package textnorm canonicalises text so that accented and unaccented,
// upper and lower case variants of the same word compare equal.
// The extractor and the scorer both go through this package.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalise decomposes s (NFD), strips combining marks, lowercases,
// collapses whitespace runs to a single space and trims the result.
// It is pure, total and idempotent.
func Normalise(s string) string {
	if s == "" {
		return ""
	}
	// A fresh chain per call: transform.Chain keeps state and is not safe to share.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// Tokens splits the normalised form of s on whitespace. Leading and
// trailing punctuation is trimmed from each token and empty tokens are
// dropped, so "oil," and "oil" yield the same token.
func Tokens(s string) []string {
	fields := strings.Fields(Normalise(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, isPunct)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TokenSet returns the distinct tokens of all inputs.
func TokenSet(inputs ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, in := range inputs {
		for _, tok := range Tokens(in) {
			set[tok] = struct{}{}
		}
	}
	return set
}

// NormaliseAll normalises every word, dropping empty results.
func NormaliseAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n := Normalise(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// IndexWord returns the byte offset of the first whole-token occurrence
// of word in normalised, or -1. Both arguments must already be
// normalised; word may span several tokens ("day after tomorrow").
func IndexWord(normalised, word string) int {
	if word == "" {
		return -1
	}
	for i := 0; i < len(normalised); {
		j := strings.Index(normalised[i:], word)
		if j < 0 {
			return -1
		}
		start := i + j
		if boundary(normalised, start-1) && boundary(normalised, start+len(word)) {
			return start
		}
		i = start + 1
	}
	return -1
}

// HasWord reports whether word occurs in normalised as a whole token.
func HasWord(normalised, word string) bool {
	return IndexWord(normalised, word) >= 0
}

// HasAnyWord reports whether any of words occurs as a whole token.
func HasAnyWord(normalised string, words []string) bool {
	_, ok := FirstWord(normalised, words)
	return ok
}

// FirstWord returns the keyword occurring earliest in normalised and its offset.
func FirstWord(normalised string, words []string) (at int, ok bool) {
	at = -1
	for _, w := range words {
		if i := IndexWord(normalised, w); i >= 0 && (at < 0 || i < at) {
			at = i
		}
	}
	return at, at >= 0
}

// boundary reports whether the byte at i is outside s or not part of a word.
func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	if c >= 0x80 {
		// Multi-byte runes are letters in practice (đ, ž after stripping).
		return false
	}
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_')
}

func isPunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
