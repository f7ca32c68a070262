package cli

import (
	"fmt"
	"strings"

	"github.com/anaserve/anaserve/pkg/anagram"
	"github.com/charmbracelet/log"
)

// Reason strings printed after a negative test verdict.
const (
	reasonSelf           = "a word cannot be an anagram of itself"
	reasonFirstNotWord   = "first provided word is not a valid word"
	reasonSecondNotWord  = "second provided word is not a valid word"
	reasonDifferentChars = "words do not contain the same characters in the same amounts"
)

// RunFind prints the indexed anagrams of word to stdout, one per line,
// capped at limit when limit is positive. Returns the process exit code:
// 0 when matches were found, 1 when none were.
func RunFind(ix *anagram.Index, word string, limit int, simple bool) int {
	matches, err := ix.Find(word)
	if err != nil {
		log.Errorf("invalid query: %v", err)
		return 2
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	for _, m := range matches {
		fmt.Println(m)
	}
	if !simple {
		fmt.Printf("found %d proper anagrams\n", len(matches))
	}

	if len(matches) == 0 {
		return 1
	}
	return 0
}

// RunTest prints the verdict for a pair of words. testType selects the
// check: "proper" consults the index, "standard" compares letters only.
// Under simple output the verdict is a bare true/false line; otherwise a
// sentence plus Reason lines on the negative path. Exit code 0 for an
// affirmative verdict, 1 for a negative one.
func RunTest(ix *anagram.Index, wordA, wordB, testType string, simple bool) int {
	var ok bool
	switch testType {
	case "proper":
		ok = ix.AreProperAnagrams(wordA, wordB)
	case "standard":
		ok = anagram.AreAnagrams(wordA, wordB)
	default:
		log.Errorf("unknown test type %q, want proper or standard", testType)
		return 2
	}

	if simple {
		if ok {
			fmt.Println("true")
		} else {
			fmt.Println("false")
		}
	} else if ok {
		fmt.Printf("%q is %s anagram of %q\n", wordA, testType, wordB)
	} else {
		fmt.Printf("%q is not %s anagram of %q\n", wordA, testType, wordB)
		for _, reason := range testReasons(ix, wordA, wordB, testType) {
			fmt.Printf("Reason: %s\n", reason)
		}
	}

	if ok {
		return 0
	}
	return 1
}

// testReasons explains a negative verdict. Self matches are reported
// first; for proper tests, missing wordlist membership beats the letter
// comparison.
func testReasons(ix *anagram.Index, wordA, wordB, testType string) []string {
	if strings.EqualFold(wordA, wordB) {
		return []string{reasonSelf}
	}
	if testType == "standard" {
		return []string{reasonDifferentChars}
	}

	var reasons []string
	aReal := ix.Has(wordA)
	bReal := ix.Has(wordB)
	if !aReal {
		reasons = append(reasons, reasonFirstNotWord)
	}
	if !bReal {
		reasons = append(reasons, reasonSecondNotWord)
	}
	if aReal && bReal {
		reasons = append(reasons, reasonDifferentChars)
	}
	return reasons
}

// RunGroups prints the anagram groups of the index in signature order,
// one group per line as "<first word>: <rest>". Exit code 0 when any
// group met minSize, 1 otherwise.
func RunGroups(ix *anagram.Index, minSize int, simple bool) int {
	groups := ix.Groups(minSize)
	for _, g := range groups {
		if len(g.Words) == 1 {
			fmt.Println(g.Words[0])
			continue
		}
		fmt.Printf("%s: %s\n", g.Words[0], strings.Join(g.Words[1:], " "))
	}
	if !simple {
		fmt.Printf("found %d groups\n", len(groups))
	}

	if len(groups) == 0 {
		return 1
	}
	return 0
}

// RunPermute prints up to limit letter rearrangements of word, the
// original arrangement excluded. The cap is required since arrangements
// grow factorially with word length. Exit code 0 when any permutation
// was printed, 1 when the word is too short to have any.
func RunPermute(word string, limit int, simple bool) int {
	if limit <= 0 {
		log.Error("permute needs a positive -limit, arrangements grow factorially")
		return 2
	}

	iter := anagram.Permutations(word)
	count := 0
	for count < limit {
		perm, ok := iter.Next()
		if !ok {
			break
		}
		fmt.Println(perm)
		count++
	}
	if !simple {
		fmt.Printf("found %d permutations\n", count)
	}

	if count == 0 {
		return 1
	}
	return 0
}
