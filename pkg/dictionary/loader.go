package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single line or token read from a source.
const maxLineSize = 1024 * 1024

// LoadStats reports the outcome of a word load.
type LoadStats struct {
	Added   int
	Skipped int
}

func newScanner(r io.Reader, split bufio.SplitFunc) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(split)
	return scanner
}

// openSource validates and opens filename for kind.
func openSource(filename string, kind SourceKind) (*os.File, error) {
	if err := ValidateSource(filename, kind); err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrSourceUnavailable, filename, err)
	}
	return file, nil
}

// LoadWords inserts every whitespace separated token of r. Tokens that are
// not lowercase a-z words are skipped and counted.
func (d *Dictionary) LoadWords(r io.Reader) (LoadStats, error) {
	var stats LoadStats
	scanner := newScanner(r, bufio.ScanWords)

	for scanner.Scan() {
		token := scanner.Text()
		if err := d.trie.Insert(token); err != nil {
			if errors.Is(err, ErrInvalidWord) {
				log.Debugf("Skipping token: %v", err)
				stats.Skipped++
				continue
			}
			return stats, err
		}
		stats.Added++
	}

	// bulk loads touch too many prefixes to invalidate one by one
	if stats.Added > 0 {
		d.cache.reset()
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read words: %w", err)
	}
	return stats, nil
}

// LoadWordsFile validates filename as a word list and loads it.
func (d *Dictionary) LoadWordsFile(filename string) (LoadStats, error) {
	file, err := openSource(filename, SourceWords)
	if err != nil {
		return LoadStats{}, err
	}
	defer file.Close()

	stats, err := d.LoadWords(file)
	if err != nil {
		return stats, fmt.Errorf("load %s: %w", filename, err)
	}
	if stats.Skipped > 0 {
		log.Warnf("Skipped %d invalid tokens in %s", stats.Skipped, filename)
	}
	return stats, nil
}

// LoadAbbreviations appends one pair per line of r: the first token is the
// abbreviation, the rest of the line is its full form. Pairs are kept in
// order; a repeated abbreviation is stored but never matched.
func (d *Dictionary) LoadAbbreviations(r io.Reader) (int, error) {
	scanner := newScanner(r, bufio.ScanLines)
	count := 0
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		short, full := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			short, full = line[:i], strings.TrimSpace(line[i:])
		}
		if full == "" {
			log.Debugf("Abbreviation %q on line %d has no full form", short, lineNum)
			continue
		}

		d.abbreviations = append(d.abbreviations, Abbreviation{Short: short, Full: full})
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read abbreviations: %w", err)
	}
	return count, nil
}

// LoadAbbreviationsFile validates filename as an abbreviation list and loads it.
func (d *Dictionary) LoadAbbreviationsFile(filename string) (int, error) {
	file, err := openSource(filename, SourceAbbreviations)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := d.LoadAbbreviations(file)
	if err != nil {
		return n, fmt.Errorf("load %s: %w", filename, err)
	}
	return n, nil
}

// LoadPhoneticGroups reads one comma separated group per line and maps
// every member to the whole line. Members are trimmed; empty ones dropped.
func (d *Dictionary) LoadPhoneticGroups(r io.Reader) (int, error) {
	scanner := newScanner(r, bufio.ScanLines)
	count := 0

	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		group := make([]string, 0, len(fields))
		for _, f := range fields {
			if f = strings.TrimSpace(f); f != "" {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}
		d.addPhoneticGroup(group)
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read phonetic groups: %w", err)
	}
	return count, nil
}

// LoadPhoneticGroupsFile validates filename as a phonetic group list and loads it.
func (d *Dictionary) LoadPhoneticGroupsFile(filename string) (int, error) {
	file, err := openSource(filename, SourcePhonetics)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := d.LoadPhoneticGroups(file)
	if err != nil {
		return n, fmt.Errorf("load %s: %w", filename, err)
	}
	return n, nil
}
