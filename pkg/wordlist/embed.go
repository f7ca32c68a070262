package wordlist

import (
	_ "embed"
	"strings"
	"sync"
)

// The default list is a small curated slice of common English vocabulary,
// heavy on words that actually have anagrams. It keeps the tool usable with
// no setup; anything serious should bring its own file.
//
//go:embed words.txt
var defaultContent string

var (
	defaultOnce  sync.Once
	defaultWords []string
)

// Default returns the embedded wordlist. The file is parsed once and cached;
// every call returns a fresh copy the caller may modify.
func Default() []string {
	defaultOnce.Do(func() {
		defaultWords, _ = FromReader(strings.NewReader(defaultContent), Options{})
	})
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}
