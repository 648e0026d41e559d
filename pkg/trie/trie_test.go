package trie_test

import (
	"errors"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newTrie(t *testing.T, words ...string) *trie.Trie {
	t.Helper()
	tr := trie.New()
	for _, w := range words {
		assert.NilError(t, tr.Insert(w))
	}
	return tr
}

func TestInsertThenSearch(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"a", "cat", "catalogue", "zz", "abcdefghijklmnopqrstuvwxyz"} {
		tr := newTrie(t, word)
		n := tr.Search(word)
		assert.Assert(t, n != nil, "search %q", word)
		assert.Check(t, n.IsWord())
		assert.Check(t, is.Equal(n.Word(), word))
		assert.Check(t, is.Equal(n.Frequency(), 1))
	}
}

func TestInsertDuplicateGrowsFrequency(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "bow", "bow")
	n := tr.Search("bow")
	assert.Check(t, n.IsWord())
	assert.Check(t, is.Equal(n.Frequency(), 2))
	assert.Check(t, is.Equal(tr.Len(), 1))

	assert.NilError(t, tr.InsertFreq("bow", 5))
	assert.Check(t, is.Equal(tr.Search("bow").Frequency(), 7))
}

func TestInsertRejectsInvalidWords(t *testing.T) {
	t.Parallel()

	tr := trie.New()
	for _, word := range []string{"", "Cat", "c4t", "naïve", "two words", "don't"} {
		err := tr.Insert(word)
		assert.Check(t, errors.Is(err, trie.ErrInvalidWord), "insert %q: %v", word, err)
	}
	assert.Check(t, is.Equal(tr.Len(), 0))
	assert.Check(t, is.Equal(tr.NodeCount(), 1))

	assert.Check(t, errors.Is(tr.InsertFreq("cat", 0), trie.ErrInvalidWord))
	assert.Check(t, tr.Search("c") == nil)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "car", "cart")

	assert.Check(t, tr.Search("") == tr.Root())
	assert.Check(t, tr.Search("ca") != nil)
	assert.Check(t, !tr.Search("ca").IsWord())
	assert.Check(t, is.Equal(tr.Search("ca").Word(), ""))
	assert.Check(t, tr.Search("cat") == nil)
	assert.Check(t, tr.Search("CAR") == nil)
	assert.Check(t, tr.Search("c-r") == nil)
	assert.Check(t, tr.Contains("cart"))
	assert.Check(t, !tr.Contains("ca"))
}

func TestSuggestOrder(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "cat", "car", "cart")
	got := trie.Suggest(tr.Search("ca"), 3)
	assert.DeepEqual(t, got, []string{"car", "cart", "cat"})
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name   string
		words  []string
		prefix string
		limit  int
		want   []string
	}{
		{
			name:   "missing_prefix",
			words:  []string{"cat"},
			prefix: "dog",
			limit:  3,
			want:   nil,
		},
		{
			name:   "start_node_first",
			words:  []string{"cart", "car"},
			prefix: "car",
			limit:  3,
			want:   []string{"car", "cart"},
		},
		{
			name:   "stops_inside_branch",
			words:  []string{"car", "cart", "cat"},
			prefix: "ca",
			limit:  1,
			// "cart" is below the frame that hit the limit; "cat" is a pending sibling.
			want: []string{"car", "cat"},
		},
		{
			name:   "pending_siblings_overrun",
			words:  []string{"d", "c", "b", "a"},
			prefix: "",
			limit:  2,
			want:   []string{"a", "b", "c", "d"},
		},
		{
			name:   "deep_branch_then_stop",
			words:  []string{"ab", "abc", "abd", "b"},
			prefix: "",
			limit:  2,
			want:   []string{"ab", "abc", "abd", "b"},
		},
		{
			name:   "default_limit",
			words:  []string{"aa", "ab", "ac", "ad", "ae"},
			prefix: "a",
			limit:  0,
			want:   []string{"aa", "ab", "ac", "ad", "ae"},
		},
		{
			name:   "exact_limit_in_one_chain",
			words:  []string{"a", "ab", "abc", "abcd"},
			prefix: "a",
			limit:  3,
			want:   []string{"a", "ab", "abc"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			tr := newTrie(t, test.words...)
			got := tr.Suggest(test.prefix, test.limit)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Suggest(%q, %d) diff (-want +got):\n%s", test.prefix, test.limit, diff)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "cat")
	assert.NilError(t, tr.Delete("cat"))
	assert.Check(t, !tr.Contains("cat"))
	assert.Check(t, tr.Search("c") == nil)
	assert.Check(t, is.Equal(tr.NodeCount(), 1))
	assert.Check(t, is.Equal(tr.Len(), 0))

	err := tr.Delete("cat")
	assert.Check(t, errors.Is(err, trie.ErrNotFound), "second delete: %v", err)
}

func TestDeleteKeepsSharedPrefix(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "cat", "car", "cart")
	before := tr.NodeCount()

	assert.NilError(t, tr.Delete("car"))
	assert.Check(t, is.Equal(tr.NodeCount(), before))
	assert.DeepEqual(t, tr.Words(), []string{"cart", "cat"})
	assert.Check(t, tr.Search("car") != nil)
	assert.Check(t, !tr.Search("car").IsWord())
	assert.DeepEqual(t, tr.Suggest("ca", 3), []string{"cart", "cat"})
}

func TestDeletePrunesTrailingNodes(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "car", "cart")
	assert.Check(t, is.Equal(tr.NodeCount(), 5))

	assert.NilError(t, tr.Delete("cart"))
	assert.Check(t, is.Equal(tr.NodeCount(), 4))
	assert.Check(t, !tr.Search("car").HasChildren())

	tr = newTrie(t, "a", "abcde")
	assert.NilError(t, tr.Delete("abcde"))
	assert.Check(t, is.Equal(tr.NodeCount(), 2))
	assert.DeepEqual(t, tr.Words(), []string{"a"})
}

func TestDeleteNotFoundLeavesTrieUntouched(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"ca", "cab", "cartoon", "dog", "c"} {
		tr := newTrie(t, "car", "cart")
		nodes := tr.NodeCount()

		err := tr.Delete(word)
		assert.Check(t, errors.Is(err, trie.ErrNotFound), "delete %q: %v", word, err)
		assert.Check(t, is.Equal(tr.NodeCount(), nodes))
		assert.Check(t, is.Equal(tr.Len(), 2))
		assert.DeepEqual(t, tr.Words(), []string{"car", "cart"})
	}

	tr := newTrie(t, "car")
	assert.Check(t, errors.Is(tr.Delete("Car"), trie.ErrInvalidWord))
	assert.Check(t, errors.Is(tr.Delete(""), trie.ErrInvalidWord))
}

func TestDeleteThenReinsert(t *testing.T) {
	t.Parallel()

	tr := newTrie(t, "bough", "bough")
	assert.NilError(t, tr.Delete("bough"))
	assert.NilError(t, tr.Insert("bough"))

	n := tr.Search("bough")
	assert.Check(t, n.IsWord())
	// frequency lives on the node, which was pruned and rebuilt
	assert.Check(t, is.Equal(n.Frequency(), 1))
}
