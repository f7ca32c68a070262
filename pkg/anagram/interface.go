package anagram

// IFinder is the query surface consumers take when they only look things up.
// *Index satisfies it.
type IFinder interface {
	// Find returns the indexed anagrams of query in wordlist order.
	Find(query string) ([]string, error)

	// Len returns the number of indexed entries.
	Len() int
}
