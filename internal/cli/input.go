// Package cli implements the interactive prompt and the one-shot
// find/test/groups/permute command modes.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anaserve/anaserve/pkg/anagram"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, looking up anagrams
// for each entered word. Query length and result count limits are
// applied per line.
type InputHandler struct {
	finder      anagram.IFinder
	maxQueryLen int
	limit       int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(finder anagram.IFinder, maxQueryLen, limit int) *InputHandler {
	return &InputHandler{
		finder:      finder,
		maxQueryLen: maxQueryLen,
		limit:       limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Printf("anaserve CLI, %d words indexed", h.finder.Len())
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to see its anagrams (Ctrl+C to exit):")

	for {
		log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput looks up anagrams for a single word. It validates the
// word's length, asks the finder for matches and prints the formatted
// results to the log.
func (h *InputHandler) handleInput(word string) {
	if len(word) > h.maxQueryLen {
		log.Errorf("Query too long: %s", word)
		return
	}

	start := time.Now()
	log.Debug("Processing request for", "word", word)

	matches, err := h.finder.Find(word)
	if err != nil {
		log.Errorf("Lookup failed for '%s': %v", word, err)
		return
	}

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for '%s'", elapsed, word)

	if h.limit > 0 && len(matches) > h.limit {
		matches = matches[:h.limit]
	}

	if len(matches) == 0 {
		log.Warnf("No anagrams found for '%s'", word)
		return
	}

	log.Printf("Found %d anagrams for '%s':", len(matches), word)
	for i, m := range matches {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", m)
		log.Printf("%2d. %s", i+1, clWord)
	}
}
