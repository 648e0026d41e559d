package trie

const alphabetSize = 26

// Node is a single letter position in the trie.
// A Node owns its children exclusively; there are no parent links.
type Node struct {
	children [alphabetSize]*Node
	end      bool
	freq     int
	// word caches the full word at terminal nodes so retrieval
	// does not need the path. Stale once end is cleared.
	word string
}

func newNode() *Node {
	return &Node{}
}

// IsWord reports whether the path to n spells a stored word.
func (n *Node) IsWord() bool {
	return n != nil && n.end
}

// Word returns the stored word, or "" if n is not terminal.
func (n *Node) Word() string {
	if !n.IsWord() {
		return ""
	}
	return n.word
}

// Frequency returns how many times the word ending at n was inserted.
func (n *Node) Frequency() int {
	if n == nil {
		return 0
	}
	return n.freq
}

// Child returns the child for letter, or nil.
func (n *Node) Child(letter byte) *Node {
	if n == nil || !isLetter(letter) {
		return nil
	}
	return n.children[letter-'a']
}

// HasChildren reports whether any child slot is occupied.
func (n *Node) HasChildren() bool {
	if n == nil {
		return false
	}
	for _, c := range n.children {
		if c != nil {
			return true
		}
	}
	return false
}

func (n *Node) prunable() bool {
	return !n.end && !n.HasChildren()
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
