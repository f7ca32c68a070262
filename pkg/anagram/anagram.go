/*
Package anagram finds and verifies anagrams against an indexed wordlist.

Two words are anagrams when they contain the same characters in the same
amounts but are not the same word. Matching is case-insensitive throughout:
"Listen" and "silent" are anagrams, and "race" is never an anagram of "RACE"
because ignoring case they are the same word. A proper anagram additionally
has to be a real word, i.e. an entry of the indexed wordlist.

The package is split along those lines: Signature computes the canonical
letter-multiset key, Build groups a wordlist by signature into an immutable
Index, and Find answers queries against it. Building is a single-writer
operation; a built Index is safe for concurrent lookups.
*/
package anagram

import (
	"errors"
	"strings"
)

// ErrEmptyQuery is returned by Find for the empty query word. An empty query
// is rejected rather than matched against empty-signature entries, so a
// wordlist with stray empty lines can never make a query vacuously succeed.
var ErrEmptyQuery = errors.New("anagram: empty query word")

// Find returns every indexed word that is an anagram of query, in wordlist
// order. The query itself is excluded: any entry equal to the query under
// case folding is dropped, every occurrence of it. Querying a word with no
// anagrams yields an empty, non-nil slice and no error; the only failure is
// ErrEmptyQuery for "".
func (ix *Index) Find(query string) ([]string, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	bucket := ix.buckets[Signature(query)]
	matches := make([]string, 0, len(bucket))
	for _, word := range bucket {
		if strings.EqualFold(word, query) {
			continue
		}
		matches = append(matches, word)
	}
	return matches, nil
}

// AreAnagrams reports whether a and b are anagrams of each other. Neither
// word needs to be in any wordlist; this is a pure letter comparison. Words
// that are equal under case folding are not anagrams.
func AreAnagrams(a, b string) bool {
	if strings.EqualFold(a, b) {
		return false
	}
	return Signature(a) == Signature(b)
}

// AreProperAnagrams reports whether a and b are anagrams and both are, with
// exactly these spellings, entries of the indexed wordlist.
func (ix *Index) AreProperAnagrams(a, b string) bool {
	if !ix.Has(a) || !ix.Has(b) {
		return false
	}
	return AreAnagrams(a, b)
}
