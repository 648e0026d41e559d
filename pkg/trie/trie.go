// Package trie is the core of wordtrie: a 26-ary prefix tree over lowercase ASCII words
// with insertion counts, prefix search, bounded suggestion walks and deletion with pruning.
//
// Every node owns its children exclusively, so removing a child slot releases the
// whole subtree below it. The Trie is not safe for concurrent use.
package trie

import (
	"errors"
	"fmt"
)

// DefaultSuggestLimit is used by Suggest when limit is not positive.
const DefaultSuggestLimit = 3

var (
	// ErrNotFound is returned when a word is not stored in the trie.
	ErrNotFound = errors.New("word not found")
	// ErrInvalidWord is returned for words that are empty or contain bytes outside a-z.
	ErrInvalidWord = errors.New("invalid word")
)

// Trie owns the root node and tracks how many distinct words are stored.
type Trie struct {
	root *Node
	size int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Root returns the root node. Search("") returns the same node.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of distinct stored words.
func (t *Trie) Len() int {
	return t.size
}

// ValidateWord checks that word is non-empty and only holds a-z.
func ValidateWord(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return fmt.Errorf("%w: %q has %q at %d", ErrInvalidWord, word, word[i], i)
		}
	}
	return nil
}

// Insert stores word once. See InsertFreq.
func (t *Trie) Insert(word string) error {
	return t.InsertFreq(word, 1)
}

// InsertFreq stores word, creating missing nodes along its path, and adds freq
// to the terminal node's frequency. Re-inserting a word keeps it a single entry
// and only grows its frequency.
func (t *Trie) InsertFreq(word string, freq int) error {
	if err := ValidateWord(word); err != nil {
		return err
	}
	if freq < 1 {
		return fmt.Errorf("%w: frequency %d for %q", ErrInvalidWord, freq, word)
	}

	current := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'a'
		if current.children[idx] == nil {
			current.children[idx] = newNode()
		}
		current = current.children[idx]
	}

	if !current.end {
		t.size++
	}
	current.end = true
	current.freq += freq
	current.word = word
	return nil
}

// Search walks prefix from the root and returns the node at its end,
// or nil if the path does not exist. The empty prefix returns the root.
func (t *Trie) Search(prefix string) *Node {
	current := t.root
	for i := 0; i < len(prefix); i++ {
		current = current.Child(prefix[i])
		if current == nil {
			return nil
		}
	}
	return current
}

// Contains reports whether word is stored.
func (t *Trie) Contains(word string) bool {
	return t.Search(word).IsWord()
}

// Suggest collects words reachable from start in depth-first pre-order,
// children in ascending letter order, start itself first when it is terminal.
//
// The limit is checked once per visited node, right after that node's own word
// is appended. Sibling subtrees that are already queued in an ancestor's loop
// still append their own word before checking, so the result can hold more
// than limit words. Callers that need a hard cap should slice the result.
func Suggest(start *Node, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	var out []string
	collect(start, &out, limit)
	return out
}

func collect(n *Node, out *[]string, limit int) {
	if n == nil {
		return
	}
	if n.end {
		*out = append(*out, n.word)
	}
	if len(*out) >= limit {
		return
	}
	for _, child := range n.children {
		if child != nil {
			collect(child, out, limit)
		}
	}
}

// Suggest is shorthand for Suggest(t.Search(prefix), limit).
func (t *Trie) Suggest(prefix string, limit int) []string {
	return Suggest(t.Search(prefix), limit)
}

// Delete removes word and prunes every trailing node that no longer leads to
// a stored word. Nothing is modified when the word is not stored.
func (t *Trie) Delete(word string) error {
	if err := ValidateWord(word); err != nil {
		return err
	}
	if _, err := remove(t.root, word, 0); err != nil {
		return fmt.Errorf("delete %q: %w", word, err)
	}
	t.size--
	return nil
}

// remove reports whether n can be released by its parent once word is gone.
func remove(n *Node, word string, depth int) (bool, error) {
	if depth == len(word) {
		if !n.end {
			return false, ErrNotFound
		}
		n.end = false
		return !n.HasChildren(), nil
	}

	idx := word[depth] - 'a'
	child := n.children[idx]
	if child == nil {
		return false, ErrNotFound
	}

	prune, err := remove(child, word, depth+1)
	if err != nil {
		return false, err
	}
	if prune {
		n.children[idx] = nil
	}
	return n.prunable(), nil
}

// NodeCount returns the number of nodes, root included.
func (t *Trie) NodeCount() int {
	return countNodes(t.root)
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.children {
		total += countNodes(child)
	}
	return total
}
