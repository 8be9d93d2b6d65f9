package keyword

import "sort"

// node is one prefix position in the trie.
type node struct {
	children map[rune]*node
	keyword  string
	terminal bool
}

func newNode() *node {
	return &node{}
}

// child returns the child reached by r, or nil.
func (n *node) child(r rune) *node {
	return n.children[r]
}

// childOrCreate returns the child reached by r, creating it when missing.
func (n *node) childOrCreate(r rune) *node {
	if n.children == nil {
		n.children = make(map[rune]*node)
	}
	c, ok := n.children[r]
	if !ok {
		c = newNode()
		n.children[r] = c
	}
	return c
}

// markTerminal records that the path to n spells keyword.
func (n *node) markTerminal(keyword string) {
	n.keyword = keyword
	n.terminal = true
}

// collect appends every terminal value at or below n.
func (n *node) collect(out []string) []string {
	if n.terminal {
		out = append(out, n.keyword)
	}
	for _, c := range n.children {
		out = c.collect(out)
	}
	return out
}

func sortedKeywords(n *node) []string {
	out := n.collect(nil)
	sort.Strings(out)
	return out
}
