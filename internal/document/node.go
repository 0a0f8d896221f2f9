package document

import "strings"

// Node is one element of the parsed document tree: an internal node for a
// mapping, a leaf for everything else. Structure is immutable after build;
// only DisplayValue changes, when an edit or a ledger rehydration lands on
// a leaf.
type Node struct {
	Key          string
	DisplayValue string
	EnvVar       string // set only when a leaf's literal was a placeholder
	Comment      string
	Parent       *Node
	Children     []*Node
}

// IsLeaf reports whether the node holds a value rather than sub-sections.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Path returns the reload-stable identity of n: the chain of keys from
// just below the root down to n, joined with underscores. The root's path
// is the empty string.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		parts = append(parts, cur.Key)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "_")
}

// Identity returns the ledger key for a leaf: its environment-variable
// binding when one was declared, its path otherwise.
func (n *Node) Identity() string {
	if n.EnvVar != "" {
		return n.EnvVar
	}
	return n.Path()
}

// Sections returns the non-leaf children of n in document order.
func (n *Node) Sections() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if !c.IsLeaf() {
			out = append(out, c)
		}
	}
	return out
}

// Settings returns the leaf children of n in document order.
func (n *Node) Settings() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsLeaf() {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and every descendant depth-first in child order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
