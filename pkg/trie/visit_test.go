package trie_test

import (
	"errors"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestVisitOrder(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "zoo", "bow", "bough", "a", "bo")

	var paths []string
	err := tr.Visit(func(path string, n *trie.Node) error {
		assert.Check(t, is.Equal(path, n.Word()))
		paths = append(paths, path)
		return nil
	})
	assert.NilError(t, err)
	assert.DeepEqual(t, paths, []string{"a", "bo", "bough", "bow", "zoo"})
	assert.DeepEqual(t, tr.Words(), paths)
}

func TestVisitSkipAndStop(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "bo", "bough", "bow", "cat")

	var paths []string
	err := tr.Visit(func(path string, _ *trie.Node) error {
		paths = append(paths, path)
		if path == "bo" {
			return trie.SkipSubtree
		}
		return nil
	})
	assert.NilError(t, err)
	assert.DeepEqual(t, paths, []string{"bo", "cat"})

	stop := errors.New("stop")
	paths = nil
	err = tr.Visit(func(path string, _ *trie.Node) error {
		paths = append(paths, path)
		if path == "bough" {
			return stop
		}
		return nil
	})
	assert.Check(t, errors.Is(err, stop))
	assert.DeepEqual(t, paths, []string{"bo", "bough"})
}

func TestVisitSubtree(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "car", "cart", "cat", "dog")

	var paths []string
	collect := func(path string, _ *trie.Node) error {
		paths = append(paths, path)
		return nil
	}
	assert.NilError(t, tr.VisitSubtree("car", collect))
	assert.DeepEqual(t, paths, []string{"car", "cart"})

	paths = nil
	assert.NilError(t, tr.VisitSubtree("x", collect))
	assert.Check(t, is.Len(paths, 0))
}

func TestAllIsRestartable(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "b", "a", "ab")

	for range 2 {
		var paths []string
		for path, n := range tr.All() {
			assert.Check(t, n.IsWord())
			paths = append(paths, path)
		}
		assert.DeepEqual(t, paths, []string{"a", "ab", "b"})
	}

	var first string
	for path := range tr.All() {
		first = path
		break
	}
	assert.Check(t, is.Equal(first, "a"))
}

func TestWordsEmpty(t *testing.T) {
	t.Parallel()

	assert.Check(t, is.Len(trie.New().Words(), 0))
}
