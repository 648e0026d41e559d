// Package dictionary wraps the trie with the side tables the shell and server need:
// an ordered abbreviation list and a phonetic group map. It also owns the
// text loaders that fill them and a prefix result cache for autocomplete.
package dictionary

import (
	"errors"
	"fmt"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

const defaultCacheSize = 256

var (
	// ErrNotFound is returned when a prefix or word is not in the dictionary.
	ErrNotFound = trie.ErrNotFound
	// ErrInvalidWord is returned for words outside lowercase a-z.
	ErrInvalidWord = trie.ErrInvalidWord
	// ErrSourceUnavailable is returned when a load source cannot be opened.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// Suggestion is a single autocomplete result.
type Suggestion struct {
	Word      string
	Frequency int
}

// Sources names the three text files read by Initialize. Empty paths are skipped.
type Sources struct {
	Words         string
	Abbreviations string
	Phonetics     string
}

// Dictionary is the single owner of a trie and its side tables.
// It is not safe for concurrent use.
type Dictionary struct {
	trie          *trie.Trie
	abbreviations []Abbreviation
	phonetics     map[string][]string
	cache         *resultCache
	suggestLimit  int
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithSuggestLimit sets the limit used by Autocomplete.
func WithSuggestLimit(limit int) Option {
	return func(d *Dictionary) {
		if limit > 0 {
			d.suggestLimit = limit
		}
	}
}

// WithCacheSize bounds the autocomplete result cache. Zero disables it.
func WithCacheSize(entries int) Option {
	return func(d *Dictionary) {
		d.cache = newResultCache(entries)
	}
}

// New returns an empty Dictionary.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		trie:         trie.New(),
		phonetics:    make(map[string][]string),
		cache:        newResultCache(defaultCacheSize),
		suggestLimit: trie.DefaultSuggestLimit,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Initialize loads every non-empty source in src. A failing source does not
// stop the others; all failures are returned joined.
func (d *Dictionary) Initialize(src Sources) error {
	var errs []error

	if src.Words != "" {
		stats, err := d.LoadWordsFile(src.Words)
		if err != nil {
			errs = append(errs, err)
		} else {
			log.Debugf("Loaded %d words (%d skipped) from %s", stats.Added, stats.Skipped, src.Words)
		}
	}
	if src.Abbreviations != "" {
		n, err := d.LoadAbbreviationsFile(src.Abbreviations)
		if err != nil {
			errs = append(errs, err)
		} else {
			log.Debugf("Loaded %d abbreviations from %s", n, src.Abbreviations)
		}
	}
	if src.Phonetics != "" {
		n, err := d.LoadPhoneticGroupsFile(src.Phonetics)
		if err != nil {
			errs = append(errs, err)
		} else {
			log.Debugf("Loaded %d phonetic groups from %s", n, src.Phonetics)
		}
	}

	return errors.Join(errs...)
}

// Autocomplete returns suggestions for prefix using the configured limit.
func (d *Dictionary) Autocomplete(prefix string) ([]Suggestion, error) {
	return d.AutocompleteN(prefix, d.suggestLimit)
}

// AutocompleteN returns the words below prefix in depth-first, ascending
// letter order. The walk may return slightly more than limit words, see
// trie.Suggest. An absent prefix returns ErrNotFound.
func (d *Dictionary) AutocompleteN(prefix string, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		limit = d.suggestLimit
	}
	if cached, ok := d.cache.get(prefix, limit); ok {
		return cached, nil
	}

	node := d.trie.Search(prefix)
	if node == nil {
		return nil, fmt.Errorf("autocomplete %q: %w", prefix, ErrNotFound)
	}

	words := trie.Suggest(node, limit)
	suggestions := make([]Suggestion, 0, len(words))
	for _, w := range words {
		suggestions = append(suggestions, Suggestion{
			Word:      w,
			Frequency: d.trie.Search(w).Frequency(),
		})
	}

	d.cache.put(prefix, limit, suggestions)
	return suggestions, nil
}

// AddWord inserts word once.
func (d *Dictionary) AddWord(word string) error {
	if err := d.trie.Insert(word); err != nil {
		return fmt.Errorf("add word: %w", err)
	}
	d.cache.invalidate(word)
	return nil
}

// DeleteWord removes word. ErrNotFound when it is not stored.
func (d *Dictionary) DeleteWord(word string) error {
	if err := d.trie.Delete(word); err != nil {
		return err
	}
	d.cache.invalidate(word)
	return nil
}

// Contains reports whether word is stored.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Contains(word)
}

// Frequency returns how often word was inserted, and whether it is stored.
func (d *Dictionary) Frequency(word string) (int, bool) {
	n := d.trie.Search(word)
	if !n.IsWord() {
		return 0, false
	}
	return n.Frequency(), true
}

// Words returns every stored word in depth-first ascending order.
func (d *Dictionary) Words() []string {
	return d.trie.Words()
}

// Trie exposes the underlying trie for read-only walks.
func (d *Dictionary) Trie() *trie.Trie {
	return d.trie
}

// Stats returns counters about the loaded dictionary.
func (d *Dictionary) Stats() map[string]int {
	stats := map[string]int{
		"words":         d.trie.Len(),
		"nodes":         d.trie.NodeCount(),
		"abbreviations": len(d.abbreviations),
		"phoneticKeys":  len(d.phonetics),
		"suggestLimit":  d.suggestLimit,
		"cacheEntries":  d.cache.len(),
	}
	if d.cache != nil {
		stats["cacheHits"] = d.cache.hits
		stats["cacheMisses"] = d.cache.misses
	}
	return stats
}
