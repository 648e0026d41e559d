package trie

import (
	"errors"
	"iter"
)

// SkipSubtree can be returned by a VisitorFunc to skip the children of the current node.
var SkipSubtree = errors.New("skip subtree")

// VisitorFunc is called for every terminal node. path is the root-to-node
// letters rebuilt during the walk, so it matches n.Word().
type VisitorFunc func(path string, n *Node) error

// Visit walks every stored word in pre-order, ascending letter order.
// A non-nil error other than SkipSubtree stops the walk and is returned.
func (t *Trie) Visit(fn VisitorFunc) error {
	return visit(t.root, make([]byte, 0, 32), fn)
}

// VisitSubtree is like Visit but starts at the node for prefix.
// A prefix that is not in the trie visits nothing.
func (t *Trie) VisitSubtree(prefix string, fn VisitorFunc) error {
	start := t.Search(prefix)
	if start == nil {
		return nil
	}
	return visit(start, []byte(prefix), fn)
}

func visit(n *Node, path []byte, fn VisitorFunc) error {
	if n.end {
		if err := fn(string(path), n); err != nil {
			if errors.Is(err, SkipSubtree) {
				return nil
			}
			return err
		}
	}
	for i, child := range n.children {
		if child == nil {
			continue
		}
		if err := visit(child, append(path, byte('a'+i)), fn); err != nil {
			return err
		}
	}
	return nil
}

// All returns a lazy sequence of (path, node) pairs over every stored word,
// in the same order as Visit. Each range over it restarts from the root.
func (t *Trie) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		walk(t.root, make([]byte, 0, 32), yield)
	}
}

func walk(n *Node, path []byte, yield func(string, *Node) bool) bool {
	if n.end && !yield(string(path), n) {
		return false
	}
	for i, child := range n.children {
		if child == nil {
			continue
		}
		if !walk(child, append(path, byte('a'+i)), yield) {
			return false
		}
	}
	return true
}

// Words returns every stored word in enumeration order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.size)
	for path := range t.All() {
		words = append(words, path)
	}
	return words
}
