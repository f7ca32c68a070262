package anagram

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Signature returns the canonical key for a word's letter multiset: the word
// is case-folded and its runes are sorted ascending by code point. Two words
// share a signature exactly when they contain the same characters in the same
// amounts, ignoring case. The empty word has the empty signature.
//
// Folding uses full Unicode case folding, so "Straße" and "STRASSE" map to
// the same signature. Digits, punctuation and other non-letters are kept and
// sorted like any other character.
func Signature(word string) string {
	if isASCII(word) {
		return asciiSignature(word)
	}
	runes := []rune(cases.Fold().String(word))
	slices.Sort(runes)
	return string(runes)
}

// asciiSignature avoids the fold transformer for pure-ASCII words, which is
// nearly every entry in an English wordlist.
func asciiSignature(word string) string {
	b := []byte(word)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	slices.Sort(b)
	return string(b)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
