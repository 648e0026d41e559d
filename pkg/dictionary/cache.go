package dictionary

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

type cacheEntry struct {
	limit       int
	suggestions []Suggestion
}

// resultCache memoizes autocomplete results by prefix.
// Keys live in a patricia trie so a changed word can drop every cached
// prefix of itself in one walk.
type resultCache struct {
	entries    *patricia.Trie
	accessTime map[string]int64
	clock      int64
	maxEntries int
	hits       int
	misses     int
}

func newResultCache(maxEntries int) *resultCache {
	return &resultCache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64, max(maxEntries, 0)),
		maxEntries: maxEntries,
	}
}

func (rc *resultCache) enabled() bool {
	return rc != nil && rc.maxEntries > 0
}

func (rc *resultCache) get(prefix string, limit int) ([]Suggestion, bool) {
	if !rc.enabled() || prefix == "" {
		return nil, false
	}
	item := rc.entries.Get(patricia.Prefix(prefix))
	if item == nil {
		rc.misses++
		return nil, false
	}
	entry := item.(*cacheEntry)
	if entry.limit != limit {
		rc.misses++
		return nil, false
	}
	rc.hits++
	rc.touch(prefix)
	return slices.Clone(entry.suggestions), true
}

func (rc *resultCache) put(prefix string, limit int, suggestions []Suggestion) {
	if !rc.enabled() || prefix == "" {
		return
	}
	if _, exists := rc.accessTime[prefix]; !exists && len(rc.accessTime) >= rc.maxEntries {
		rc.evictLRU()
	}
	rc.entries.Set(patricia.Prefix(prefix), &cacheEntry{
		limit:       limit,
		suggestions: slices.Clone(suggestions),
	})
	rc.touch(prefix)
}

// invalidate drops every cached prefix of word, word included.
func (rc *resultCache) invalidate(word string) {
	if !rc.enabled() {
		return
	}
	var stale []patricia.Prefix
	err := rc.entries.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, slices.Clone(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error walking result cache for %q: %v", word, err)
		rc.reset()
		return
	}
	for _, p := range stale {
		rc.entries.Delete(p)
		delete(rc.accessTime, string(p))
	}
	if len(stale) > 0 {
		log.Debugf("Dropped %d cached prefixes of '%s'", len(stale), word)
	}
}

func (rc *resultCache) reset() {
	if rc == nil {
		return
	}
	rc.entries = patricia.NewTrie()
	clear(rc.accessTime)
}

func (rc *resultCache) len() int {
	if rc == nil {
		return 0
	}
	return len(rc.accessTime)
}

func (rc *resultCache) touch(prefix string) {
	rc.clock++
	rc.accessTime[prefix] = rc.clock
}

func (rc *resultCache) evictLRU() {
	var oldest string
	oldestTime := int64(math.MaxInt64)

	for prefix, t := range rc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = prefix
		}
	}

	if oldest != "" {
		rc.entries.Delete(patricia.Prefix(oldest))
		delete(rc.accessTime, oldest)
		log.Debugf("Evicted prefix '%s' from result cache", oldest)
	}
}
