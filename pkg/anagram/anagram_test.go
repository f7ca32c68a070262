package anagram

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestFind(t *testing.T) {
	ix := Build([]string{"cat", "act", "tac", "dog", "listen", "silent", "enlist"})

	testCases := []struct {
		query       string
		want        []string
		description string
	}{
		{"cat", []string{"act", "tac"}, "excludes the query itself"},
		{"tac", []string{"cat", "act"}, "wordlist order regardless of query"},
		{"listen", []string{"silent", "enlist"}, "second family"},
		{"dog", []string{}, "indexed word with no anagrams"},
		{"tca", []string{"cat", "act", "tac"}, "query need not be a word"},
		{"xyz", []string{}, "no matching signature"},
		{"CAT", []string{"act", "tac"}, "uppercase query folds"},
		{"Dog", []string{}, "case variant of the query is not a match"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := ix.Find(tc.query)
			if err != nil {
				t.Fatalf("Find(%q) returned error: %v", tc.query, err)
			}
			if got == nil {
				t.Fatalf("Find(%q) returned nil, want empty slice", tc.query)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Find(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

// the empty query is rejected, never resolved against the index
func TestFindEmptyQuery(t *testing.T) {
	ix := Build([]string{"cat", "act"})

	matches, err := ix.Find("")
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Find(\"\") error = %v, want ErrEmptyQuery", err)
	}
	if matches != nil {
		t.Errorf("Find(\"\") matches = %v, want nil", matches)
	}
}

// results keep the wordlist's casing, and every case variant of the
// query is excluded
func TestFindCaseHandling(t *testing.T) {
	ix := Build([]string{"Cat", "act", "TAC", "dog"})

	got, err := ix.Find("cat")
	if err != nil {
		t.Fatalf("Find(cat) returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"act", "TAC"}) {
		t.Errorf("Find(cat) = %v, want [act TAC]", got)
	}

	got, err = ix.Find("ACT")
	if err != nil {
		t.Fatalf("Find(ACT) returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Cat", "TAC"}) {
		t.Errorf("Find(ACT) = %v, want [Cat TAC]", got)
	}
}

func TestFindExcludesEveryOccurrence(t *testing.T) {
	ix := Build([]string{"bob", "Bob", "obb", "bob"})

	got, err := ix.Find("bob")
	if err != nil {
		t.Fatalf("Find(bob) returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"obb"}) {
		t.Errorf("Find(bob) = %v, want [obb]", got)
	}
}

func TestFindPreservesDuplicates(t *testing.T) {
	ix := Build([]string{"care", "race", "care", "acre"})

	got, err := ix.Find("race")
	if err != nil {
		t.Fatalf("Find(race) returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"care", "care", "acre"}) {
		t.Errorf("Find(race) = %v, want both care entries", got)
	}
}

func TestAreAnagrams(t *testing.T) {
	testCases := []struct {
		a, b        string
		want        bool
		description string
	}{
		{"race", "care", true, "proper pair"},
		{"aabc", "caab", true, "non-words still count"},
		{"Listen", "SILENT", true, "case is ignored"},
		{"race", "race", false, "a word is not its own anagram"},
		{"Race", "racE", false, "case variants are the same word"},
		{"race", "cow", false, "different letters"},
		{"cat", "cats", false, "different lengths"},
		{"", "", false, "two empty strings"},
		{"a", "", false, "empty versus non-empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := AreAnagrams(tc.a, tc.b); got != tc.want {
				t.Errorf("AreAnagrams(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAreProperAnagrams(t *testing.T) {
	ix := Build([]string{"race", "care", "cow"})

	testCases := []struct {
		a, b        string
		want        bool
		description string
	}{
		{"race", "care", true, "both are entries"},
		{"race", "reca", false, "reca is not a word"},
		{"reca", "race", false, "order does not matter"},
		{"race", "cow", false, "entries but not anagrams"},
		{"race", "race", false, "self"},
		{"Race", "care", false, "entry check is exact-spelling"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := ix.AreProperAnagrams(tc.a, tc.b); got != tc.want {
				t.Errorf("AreProperAnagrams(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func BenchmarkFind(b *testing.B) {
	words := make([]string, 0, 1100)
	for i := 0; i < 1000; i++ {
		words = append(words, fmt.Sprintf("word%d", i))
	}
	words = append(words, "aster", "rates", "stare", "tears", "taser")
	ix := Build(words)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		queries := []string{"tears", "word500", "nomatch"}
		if _, err := ix.Find(queries[i%len(queries)]); err != nil {
			b.Fatal(err)
		}
	}
}
