package newick

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Walker yields the nodes of a subtree in post-order: every node comes after
// all of its descendents. A Walker makes a single pass; call Walk again to
// traverse from the start.
type Walker struct {
	stack []walkFrame
}

type walkFrame struct {
	node *Node
	next int // index of the next child to descend into
}

// Walk returns a Walker over n and all of its descendents.
func (n *Node) Walk() *Walker {
	return &Walker{stack: []walkFrame{{node: n}}}
}

// Next returns the next node in post-order. ok is false once the traversal is
// exhausted.
func (w *Walker) Next() (n *Node, ok bool) {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			w.stack = append(w.stack, walkFrame{node: child})
			continue
		}
		n = top.node
		w.stack = w.stack[:len(w.stack)-1]
		return n, true
	}
	return nil, false
}

// Nodes returns n and all of its descendents in post-order.
func (n *Node) Nodes() []*Node {
	var nodes []*Node
	for w := n.Walk(); ; {
		node, ok := w.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, node)
	}
}

// SubtreeLeafLabelSets returns, for every node below and including n, the
// sorted labels of the leaves it subtends. The sets are in post-order, so each
// clade is listed after all of the clades nested inside it.
func (n *Node) SubtreeLeafLabelSets() [][]string {
	var sets [][]string
	n.collectLeafLabelSets(&sets)
	return sets
}

// collectLeafLabelSets appends the sets for the subtree at n and returns the
// unsorted leaf labels of n.
func (n *Node) collectLeafLabelSets(sets *[][]string) []string {
	var labels []string
	if n.IsLeaf() {
		labels = []string{n.Label}
	}
	for _, child := range n.Children {
		labels = append(labels, child.collectLeafLabelSets(sets)...)
	}
	set := slices.Clone(labels)
	slices.Sort(set)
	*sets = append(*sets, set)
	return labels
}

// SubtreeLeafLabelSetStrings is SubtreeLeafLabelSets with each set joined by
// commas.
func (n *Node) SubtreeLeafLabelSetStrings() []string {
	sets := n.SubtreeLeafLabelSets()
	strs := make([]string, len(sets))
	for i, set := range sets {
		strs[i] = strings.Join(set, ",")
	}
	return strs
}

// Walk returns a post-order Walker over every node of t.
func (t *Tree) Walk() *Walker {
	return t.Root.Walk()
}

// Nodes returns every node of t in post-order.
func (t *Tree) Nodes() []*Node {
	return t.Root.Nodes()
}

// SubtreeLeafLabelSets returns the leaf label set of every clade in t.
func (t *Tree) SubtreeLeafLabelSets() [][]string {
	return t.Root.SubtreeLeafLabelSets()
}

// SubtreeLeafLabelSetStrings returns every clade of t as a comma separated
// string of sorted leaf labels.
func (t *Tree) SubtreeLeafLabelSetStrings() []string {
	return t.Root.SubtreeLeafLabelSetStrings()
}
