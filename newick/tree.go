package newick

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Node is a single vertex of a tree. A node with no children is a leaf.
type Node struct {
	// The label of this node. For leaves this is the taxon name. Internal
	// nodes frequently have no label.
	Label string

	// Named values attached to this node, including the branch length
	// (under BranchLengthKey) when one was given.
	Metadata Metadata

	// All children of this node, in the order they were written.
	Children []*Node
}

// Tree is a named tree. The name is only used to identify the tree in
// diagnostics and in JSON output.
type Tree struct {
	Name string
	Root *Node
}

// NewNode returns a node with the given label and children.
func NewNode(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// HasChildren reports whether n is an internal node.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Set stores a metadata value on n.
func (n *Node) Set(key string, v Value) {
	if n.Metadata == nil {
		n.Metadata = make(Metadata)
	}
	n.Metadata[key] = v
}

// Unset removes a metadata value from n.
func (n *Node) Unset(key string) {
	delete(n.Metadata, key)
}

// BranchLength returns the branch length of n. ok is false when the input
// gave none.
func (n *Node) BranchLength() (length Value, ok bool) {
	return n.Metadata.Get(BranchLengthKey)
}

// SetBranchLength sets the branch length of n.
func (n *Node) SetBranchLength(length Value) {
	n.Set(BranchLengthKey, length)
}

// LeafLabels returns the labels of the leaves below n (n itself if it is a
// leaf) from left to right.
func (n *Node) LeafLabels() []string {
	return n.appendLeafLabels(nil)
}

func (n *Node) appendLeafLabels(labels []string) []string {
	if n.IsLeaf() {
		return append(labels, n.Label)
	}
	for _, child := range n.Children {
		labels = child.appendLeafLabels(labels)
	}
	return labels
}

// SortedLeafLabels returns the leaf labels below n in ascending order. This is
// the identity of the clade rooted at n.
func (n *Node) SortedLeafLabels() []string {
	labels := n.LeafLabels()
	slices.Sort(labels)
	return labels
}

// String returns the label of n and a summary of what hangs off it.
func (n *Node) String() string {
	return fmt.Sprintf("{label: %q, metadata: %v, children: %d}",
		n.Label, n.Metadata, len(n.Children))
}

// LeafLabels returns the leaf labels of the whole tree from left to right.
func (t *Tree) LeafLabels() []string {
	return t.Root.LeafLabels()
}

// CheckUniqueLeaves returns a *DuplicateLeafError if any two leaves of t share
// a label. Clade comparison is only meaningful for trees that pass.
func (t *Tree) CheckUniqueLeaves() error {
	seen := make(map[string]int)
	var dups []string
	for _, label := range t.LeafLabels() {
		seen[label]++
		if seen[label] == 2 {
			dups = append(dups, label)
		}
	}
	if len(dups) > 0 {
		return &DuplicateLeafError{Tree: t.Name, Labels: dups}
	}
	return nil
}

// String recursively converts a tree to a string, with whitespace indenting
// to indicate depth.
func (t *Tree) String() string {
	buf := new(bytes.Buffer)
	pf := func(format string, v ...interface{}) {
		fmt.Fprintf(buf, format, v...)
	}

	var out func(n *Node, depth int)
	out = func(n *Node, depth int) {
		name, length := n.Label, ""
		if len(name) == 0 {
			name = "N/A"
		}
		if l, ok := n.BranchLength(); ok {
			length = fmt.Sprintf(" (%s)", l)
		}
		pf("%s%s%s\n", strings.Repeat("  ", depth), name, length)
		for _, child := range n.Children {
			out(child, depth+1)
		}
	}
	out(t.Root, 0)
	return buf.String()
}
