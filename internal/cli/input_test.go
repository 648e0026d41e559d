package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func runShell(t *testing.T, d *dictionary.Dictionary, noFilter bool, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	h := NewInputHandler(d, &out, 3, noFilter)
	assert.NilError(t, h.Run(strings.NewReader(strings.Join(lines, "\n")+"\n")))
	return out.String()
}

func seeded(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d := dictionary.New()
	_, err := d.LoadWords(strings.NewReader("cat car cart car"))
	assert.NilError(t, err)
	_, err = d.LoadAbbreviations(strings.NewReader("omw on my way\n"))
	assert.NilError(t, err)
	_, err = d.LoadPhoneticGroups(strings.NewReader("bow,bough\n"))
	assert.NilError(t, err)
	return d
}

func TestAutocompleteChoice(t *testing.T) {
	out := runShell(t, seeded(t), false, "1", "CA", "1", "zz", "1", "c4", "9")

	assert.Check(t, is.Contains(out, "Suggestions:"))
	assert.Check(t, is.Contains(out, " 1. car"))
	assert.Check(t, is.Contains(out, "(freq: 2)"))
	assert.Check(t, is.Contains(out, " 3. cat"))
	assert.Check(t, is.Contains(out, "No suggestions found for prefix: 'zz'"))
	assert.Check(t, is.Contains(out, "'c4' (filtered out)"))
	assert.Check(t, is.Contains(out, "Exiting program."))

	car := strings.Index(out, " 1. car")
	cart := strings.Index(out, " 2. cart")
	assert.Check(t, car < cart)
}

func TestNoFilterPassesRawInput(t *testing.T) {
	out := runShell(t, seeded(t), true, "1", "CA", "9")
	assert.Check(t, is.Contains(out, "No suggestions found for prefix: 'CA'"))
}

func TestLookupChoices(t *testing.T) {
	out := runShell(t, seeded(t), false, "2", "bough", "2", "cat", "3", "omw  home", "9")

	assert.Check(t, is.Contains(out, `Phonetic matches for "bough": bow bough`))
	assert.Check(t, is.Contains(out, `Phonetic matches for "cat": No phonetic matches found.`))
	assert.Check(t, is.Contains(out, "Converted sentence: on my way home"))
}

func TestEditChoices(t *testing.T) {
	d := seeded(t)
	out := runShell(t, d, false, "4", "Dog", "7", "car", "7", "car", "6", "9")

	assert.Check(t, is.Contains(out, "Adding word to dictionary: dog"))
	assert.Check(t, is.Contains(out, `Word "car" deleted from the dictionary.`))
	assert.Check(t, is.Contains(out, `Word "car" not found in the dictionary.`))
	assert.Check(t, is.Contains(out, "--- Current Dictionary ---\ncart\ncat\ndog\n(3 words)"))
	assert.DeepEqual(t, d.Words(), []string{"cart", "cat", "dog"})
}

func TestLoadChoice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "more.txt")
	assert.NilError(t, os.WriteFile(path, []byte("zebra yak 42"), 0o644))

	d := dictionary.New()
	out := runShell(t, d, false, "5", path, "5", path+".missing", "9")

	assert.Check(t, is.Contains(out, "Loaded 2 words from "+path+" (1 skipped)"))
	assert.Check(t, is.Contains(out, "Error opening file: "+path+".missing"))
	assert.Check(t, d.Contains("zebra"))
}

func TestMenuMisc(t *testing.T) {
	out := runShell(t, dictionary.New(), false, "8", "42", "nope", "1")

	assert.Check(t, is.Contains(out, "--- Help Menu ---"))
	assert.Check(t, is.Contains(out, "9. Exit: Exit the program"))
	assert.Check(t, is.Equal(strings.Count(out, "Invalid choice. Please try again."), 2))
	// input ended while waiting for a prefix
	assert.Check(t, !strings.Contains(out, "Exiting program."))
}

func TestWordPromptsTakeFirstToken(t *testing.T) {
	d := seeded(t)
	out := runShell(t, d, false, "7", "car dog", "1", "  ca  extra", "3", "omw now", "9")

	assert.Check(t, is.Contains(out, `Word "car" deleted from the dictionary.`))
	assert.Check(t, !d.Contains("car"))
	assert.Check(t, is.Contains(out, " 1. cart"))
	assert.Check(t, is.Contains(out, "Converted sentence: on my way now"))
}
