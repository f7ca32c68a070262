package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/anaserve/anaserve/pkg/anagram"
)

func testIndex() *anagram.Index {
	return anagram.Build([]string{"cat", "act", "tac", "dog", "listen", "silent"})
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what it printed along with its exit code.
func captureStdout(t *testing.T, fn func() int) (string, int) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	code := fn()

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return string(out), code
}

func TestRunFind(t *testing.T) {
	ix := testIndex()

	out, code := captureStdout(t, func() int {
		return RunFind(ix, "cat", 0, false)
	})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	want := "act\ntac\nfound 2 proper anagrams\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunFindSimple(t *testing.T) {
	ix := testIndex()

	out, code := captureStdout(t, func() int {
		return RunFind(ix, "cat", 1, true)
	})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if out != "act\n" {
		t.Errorf("output = %q, want just the capped match", out)
	}
}

func TestRunFindNoMatches(t *testing.T) {
	ix := testIndex()

	out, code := captureStdout(t, func() int {
		return RunFind(ix, "dog", 0, false)
	})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if out != "found 0 proper anagrams\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunTestVerdicts(t *testing.T) {
	ix := testIndex()

	testCases := []struct {
		wordA       string
		wordB       string
		testType    string
		simple      bool
		wantCode    int
		wantOutput  string
		description string
	}{
		{
			wordA: "cat", wordB: "tac", testType: "proper",
			wantCode:    0,
			wantOutput:  "\"cat\" is proper anagram of \"tac\"\n",
			description: "proper affirmative",
		},
		{
			wordA: "cat", wordB: "dog", testType: "proper",
			wantCode: 1,
			wantOutput: "\"cat\" is not proper anagram of \"dog\"\n" +
				"Reason: words do not contain the same characters in the same amounts\n",
			description: "proper negative different letters",
		},
		{
			wordA: "cat", wordB: "CAT", testType: "proper",
			wantCode: 1,
			wantOutput: "\"cat\" is not proper anagram of \"CAT\"\n" +
				"Reason: a word cannot be an anagram of itself\n",
			description: "case variant counts as self",
		},
		{
			wordA: "tca", wordB: "cat", testType: "proper",
			wantCode: 1,
			wantOutput: "\"tca\" is not proper anagram of \"cat\"\n" +
				"Reason: first provided word is not a valid word\n",
			description: "proper rejects non-word on the left",
		},
		{
			wordA: "tca", wordB: "cat", testType: "standard",
			wantCode:    0,
			wantOutput:  "\"tca\" is standard anagram of \"cat\"\n",
			description: "standard ignores the wordlist",
		},
		{
			wordA: "cat", wordB: "tac", testType: "proper", simple: true,
			wantCode:    0,
			wantOutput:  "true\n",
			description: "simple affirmative",
		},
		{
			wordA: "cat", wordB: "dog", testType: "standard", simple: true,
			wantCode:    1,
			wantOutput:  "false\n",
			description: "simple negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			out, code := captureStdout(t, func() int {
				return RunTest(ix, tc.wordA, tc.wordB, tc.testType, tc.simple)
			})
			if code != tc.wantCode {
				t.Errorf("exit code = %d, want %d", code, tc.wantCode)
			}
			if out != tc.wantOutput {
				t.Errorf("output = %q, want %q", out, tc.wantOutput)
			}
		})
	}
}

func TestRunTestUnknownType(t *testing.T) {
	ix := testIndex()

	out, code := captureStdout(t, func() int {
		return RunTest(ix, "cat", "tac", "loose", false)
	})
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if out != "" {
		t.Errorf("unexpected stdout %q for usage error", out)
	}
}

func TestTestReasonsBothMissing(t *testing.T) {
	ix := testIndex()

	reasons := testReasons(ix, "tca", "atc", "proper")
	if len(reasons) != 2 {
		t.Fatalf("reasons = %v, want both membership complaints", reasons)
	}
	if reasons[0] != reasonFirstNotWord || reasons[1] != reasonSecondNotWord {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestRunGroups(t *testing.T) {
	ix := testIndex()

	out, code := captureStdout(t, func() int {
		return RunGroups(ix, 2, false)
	})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	want := "cat: act tac\nlisten: silent\nfound 2 groups\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunGroupsNoneLargeEnough(t *testing.T) {
	ix := testIndex()

	out, code := captureStdout(t, func() int {
		return RunGroups(ix, 4, true)
	})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if out != "" {
		t.Errorf("output = %q, want none under simple mode", out)
	}
}

func TestRunPermute(t *testing.T) {
	out, code := captureStdout(t, func() int {
		return RunPermute("abc", 100, false)
	})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 || lines[5] != "found 5 permutations" {
		t.Errorf("output = %q, want 5 permutations and a trailer", out)
	}
}

func TestRunPermuteCapped(t *testing.T) {
	out, code := captureStdout(t, func() int {
		return RunPermute("abcdef", 3, true)
	})
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 3 {
		t.Errorf("output = %q, want exactly 3 lines", out)
	}
}

func TestRunPermuteShortWord(t *testing.T) {
	out, code := captureStdout(t, func() int {
		return RunPermute("a", 10, false)
	})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if out != "found 0 permutations\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunPermuteRequiresLimit(t *testing.T) {
	_, code := captureStdout(t, func() int {
		return RunPermute("abc", 0, false)
	})
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
