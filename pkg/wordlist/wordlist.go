// Package wordlist loads the word inventories anagram indexes are built
// from: plain text files with one word per line, or the embedded default
// list when no file is given.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options controls how a wordlist is read.
type Options struct {
	// Dedupe drops repeated spellings, keeping the first occurrence of each.
	// Comparison is exact: "Race" and "race" are different entries.
	Dedupe bool
}

// FromReader reads one word per line. Lines are trimmed of surrounding
// whitespace (covering Windows line endings) and blank lines are skipped;
// everything else is kept verbatim, in file order.
func FromReader(r io.Reader, opts Options) ([]string, error) {
	var seen map[string]bool
	if opts.Dedupe {
		seen = make(map[string]bool)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if opts.Dedupe {
			if seen[word] {
				continue
			}
			seen[word] = true
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}
	return words, nil
}

// FromFile reads the wordlist at path.
func FromFile(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer file.Close()

	words, err := FromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist %s: %w", path, err)
	}

	log.Debugf("loaded %d words from %s", len(words), path)
	return words, nil
}

// Resolve returns the wordlist at path, or the embedded default list when
// path is empty.
func Resolve(path string, opts Options) ([]string, error) {
	if path != "" {
		return FromFile(path, opts)
	}
	words := Default()
	if opts.Dedupe {
		words = Dedupe(words)
	}
	return words, nil
}

// Dedupe returns words with repeated spellings removed, keeping the first
// occurrence of each in order. The input slice is left alone.
func Dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}
