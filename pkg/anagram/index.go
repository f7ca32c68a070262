package anagram

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index groups a wordlist by letter signature. It is built once with Build
// and never mutated afterwards, so any number of goroutines may query it
// concurrently without locking; hand it to readers only after Build returns.
type Index struct {
	buckets map[string][]string
	sigs    *patricia.Trie
	size    int
}

// Group is one anagram set: every wordlist entry sharing Signature, in
// wordlist order.
type Group struct {
	Signature string
	Words     []string
}

// Build indexes words by signature in one pass. Entries are appended to their
// bucket in input order, duplicates and all: the index is a faithful grouping
// of whatever it is given, and wordlist hygiene stays with the loader. The
// one exception is empty strings, which are dropped; they have no letters to
// group by and Find rejects the empty query anyway.
func Build(words []string) *Index {
	ix := &Index{
		buckets: make(map[string][]string, len(words)),
		sigs:    patricia.NewTrie(),
	}
	for _, word := range words {
		if word == "" {
			continue
		}
		sig := Signature(word)
		ix.buckets[sig] = append(ix.buckets[sig], word)
		ix.size++
	}

	// Trie keys are inserted in sorted order so that visits walk signatures
	// lexicographically; buckets are final by now, so items can alias them.
	keys := make([]string, 0, len(ix.buckets))
	for sig := range ix.buckets {
		keys = append(keys, sig)
	}
	slices.Sort(keys)
	for _, sig := range keys {
		ix.sigs.Insert(patricia.Prefix(sig), ix.buckets[sig])
	}

	log.Debugf("indexed %d words into %d buckets", ix.size, len(ix.buckets))
	return ix
}

// Lookup returns a copy of the bucket for sig, empty when no word in the
// list has that signature. An absent signature is not an error.
func (ix *Index) Lookup(sig string) []string {
	bucket := ix.buckets[sig]
	out := make([]string, len(bucket))
	copy(out, bucket)
	return out
}

// Len returns the total number of indexed entries, counting duplicates.
func (ix *Index) Len() int {
	return ix.size
}

// Has reports whether word is present in the index with exactly this
// spelling. Case variants do not count: "Cat" is not "cat".
func (ix *Index) Has(word string) bool {
	for _, w := range ix.buckets[Signature(word)] {
		if w == word {
			return true
		}
	}
	return false
}

// Groups returns every bucket holding at least minSize entries, ordered
// lexicographically by signature. minSize values below 1 are treated as 1.
// The returned words are copies; callers may reorder them freely.
func (ix *Index) Groups(minSize int) []Group {
	if minSize < 1 {
		minSize = 1
	}
	var groups []Group
	err := ix.sigs.Visit(func(p patricia.Prefix, item patricia.Item) error {
		bucket := item.([]string)
		if len(bucket) < minSize {
			return nil
		}
		words := make([]string, len(bucket))
		copy(words, bucket)
		groups = append(groups, Group{Signature: string(p), Words: words})
		return nil
	})
	if err != nil {
		log.Errorf("visiting signature trie: %v", err)
	}
	return groups
}

// Stats reports index counters, in the same shape the server's info action
// returns them.
func (ix *Index) Stats() map[string]int {
	maxBucket := 0
	sets := 0
	for _, bucket := range ix.buckets {
		if len(bucket) > maxBucket {
			maxBucket = len(bucket)
		}
		if len(bucket) > 1 {
			sets++
		}
	}
	return map[string]int{
		"totalWords":  ix.size,
		"buckets":     len(ix.buckets),
		"maxBucket":   maxBucket,
		"anagramSets": sets,
	}
}
