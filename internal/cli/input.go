// Package cli is the numbered menu shell over a dictionary.
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

const (
	choiceAutocomplete = iota + 1
	choicePhonetic
	choiceExpand
	choiceAdd
	choiceLoad
	choiceView
	choiceDelete
	choiceHelp
	choiceExit
)

var menuItems = []string{
	"Autocomplete",
	"Phonetic matching",
	"Auto convert abbreviation",
	"Customize dictionary",
	"Load new dictionary",
	"View dictionary",
	"Delete word",
	"Help",
	"Exit",
}

var helpLines = []string{
	"1. Autocomplete word: Suggests possible words based on prefix",
	"2. Phonetic matching: Provides words declared as sounding alike",
	"3. Auto convert abbreviation: Converts abbreviations to full form",
	"4. Customize dictionary: Add a new word to the dictionary",
	"5. Load new dictionary: Loads new words from a text file into the dictionary",
	"6. View dictionary: Displays all the words in the current dictionary",
	"7. Delete word: Removes a word from the dictionary",
	"8. Help: Shows this menu",
	"9. Exit: Exit the program",
}

// InputHandler reads menu choices and their arguments line by line and
// prints the outcome of each dictionary operation.
type InputHandler struct {
	dict      *dictionary.Dictionary
	out       *log.Logger
	wordStyle lipgloss.Style
	limit     int
	noFilter  bool
}

// NewInputHandler creates a shell writing to w. limit is the autocomplete
// limit; noFilter passes raw input to the dictionary without normalizing.
func NewInputHandler(dict *dictionary.Dictionary, w io.Writer, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		dict:      dict,
		out:       logger.NewWithConfig(w, "", log.InfoLevel, false, false, log.TextFormatter),
		wordStyle: lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("75")),
		limit:     limit,
		noFilter:  noFilter,
	}
}

// Start runs the shell on stdin.
func (h *InputHandler) Start() error {
	return h.Run(os.Stdin)
}

// Run loops until the exit choice or the end of r. Reaching the end of r is
// not an error.
func (h *InputHandler) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for {
		h.printMenu()
		line, ok := h.prompt(scanner, "Enter your choice:")
		if !ok {
			return scanner.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			choice = 0
		}
		if choice == choiceExit {
			h.out.Print("Exiting program.")
			return nil
		}
		if err := h.handleChoice(choice, scanner); err != nil {
			if errors.Is(err, io.EOF) {
				return scanner.Err()
			}
			return err
		}
	}
}

func (h *InputHandler) printMenu() {
	h.out.Print("")
	h.out.Print("--- Main Menu ---")
	for i, item := range menuItems {
		h.out.Printf("%d. %s", i+1, item)
	}
}

// prompt prints label and returns the next trimmed line.
func (h *InputHandler) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	h.out.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func (h *InputHandler) handleChoice(choice int, scanner *bufio.Scanner) error {
	ask := func(label string) (string, error) {
		line, ok := h.prompt(scanner, label)
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
	// single word prompts take the first token, the rest of the line is dropped
	askWord := func(label string) (string, error) {
		line, err := ask(label)
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], err
		}
		return "", err
	}

	switch choice {
	case choiceAutocomplete:
		prefix, err := askWord("Enter prefix:")
		if err != nil {
			return err
		}
		h.autocomplete(prefix)

	case choicePhonetic:
		word, err := askWord("Enter word for phonetic matching:")
		if err != nil {
			return err
		}
		h.phonetic(word)

	case choiceExpand:
		sentence, err := ask("Enter sentence to auto-convert abbreviation:")
		if err != nil {
			return err
		}
		h.out.Printf("Converted sentence: %s", h.dict.ExpandAbbreviations(sentence))

	case choiceAdd:
		word, err := askWord("Enter word to add to dictionary:")
		if err != nil {
			return err
		}
		h.addWord(word)

	case choiceLoad:
		path, err := askWord("Enter filepath of new dictionary:")
		if err != nil {
			return err
		}
		h.loadWords(path)

	case choiceView:
		h.viewDictionary()

	case choiceDelete:
		word, err := askWord("Enter word to delete:")
		if err != nil {
			return err
		}
		h.deleteWord(word)

	case choiceHelp:
		h.out.Print("")
		h.out.Print("--- Help Menu ---")
		for _, line := range helpLines {
			h.out.Print(line)
		}

	default:
		h.out.Print("Invalid choice. Please try again.")
	}
	return nil
}

// normalize applies input filtering unless it is disabled.
func (h *InputHandler) normalize(s string) (string, bool) {
	if h.noFilter {
		return s, true
	}
	s = utils.NormalizeInput(s)
	return s, utils.IsValidInput(s)
}

func (h *InputHandler) autocomplete(prefix string) {
	prefix, ok := h.normalize(prefix)
	if !ok {
		h.out.Printf("No suggestions found for prefix: '%s' (filtered out)", prefix)
		return
	}

	suggestions, err := h.dict.AutocompleteN(prefix, h.limit)
	if err != nil || len(suggestions) == 0 {
		h.out.Printf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.out.Print("Suggestions:")
	for i, s := range suggestions {
		h.out.Printf("%2d. %-24s (freq: %s)", i+1, h.wordStyle.Render(s.Word), humanize.Comma(int64(s.Frequency)))
	}
}

func (h *InputHandler) phonetic(word string) {
	group, ok := h.dict.PhoneticLookup(word)
	if !ok {
		h.out.Printf("Phonetic matches for \"%s\": No phonetic matches found.", word)
		return
	}
	h.out.Printf("Phonetic matches for \"%s\": %s", word, strings.Join(group, " "))
}

func (h *InputHandler) addWord(word string) {
	word, _ = h.normalize(word)
	h.out.Printf("Adding word to dictionary: %s", word)
	if err := h.dict.AddWord(word); err != nil {
		h.out.Printf("Could not add \"%s\": %v", word, err)
	}
}

func (h *InputHandler) loadWords(path string) {
	stats, err := h.dict.LoadWordsFile(path)
	if err != nil {
		h.out.Printf("Error opening file: %s (%v)", path, err)
		return
	}
	h.out.Printf("Loaded %s words from %s (%s skipped)",
		humanize.Comma(int64(stats.Added)), path, humanize.Comma(int64(stats.Skipped)))
}

func (h *InputHandler) viewDictionary() {
	h.out.Print("")
	h.out.Print("--- Current Dictionary ---")
	count := 0
	for path := range h.dict.Trie().All() {
		h.out.Print(path)
		count++
	}
	h.out.Printf("(%s words)", humanize.Comma(int64(count)))
}

func (h *InputHandler) deleteWord(word string) {
	word, _ = h.normalize(word)
	err := h.dict.DeleteWord(word)
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		h.out.Printf("Word \"%s\" not found in the dictionary.", word)
		return
	case err != nil:
		h.out.Printf("Could not delete \"%s\": %v", word, err)
		return
	}
	h.out.Printf("Word \"%s\" deleted from the dictionary.", word)
}
