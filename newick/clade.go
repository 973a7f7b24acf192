package newick

import (
	"strings"

	"golang.org/x/exp/slices"
)

// CladeEqual reports whether a and b subtend the same leaves. Topology and
// the order of children are ignored; labels are compared as sorted sequences.
func CladeEqual(a, b *Node) bool {
	return slices.Equal(a.SortedLeafLabels(), b.SortedLeafLabels())
}

// ContainsClade reports whether n, or any node below it, has exactly the
// sorted leaf labels given. Children are searched before n itself and the
// search stops at the first match.
func (n *Node) ContainsClade(sortedLabels []string) bool {
	_, found := n.containsClade(sortedLabels)
	return found
}

// containsClade returns the unsorted leaf labels of n so that parents can
// build theirs without walking the subtree again.
func (n *Node) containsClade(target []string) (labels []string, found bool) {
	if n.IsLeaf() {
		labels = []string{n.Label}
	}
	for _, child := range n.Children {
		sub, hit := child.containsClade(target)
		if hit {
			return nil, true
		}
		labels = append(labels, sub...)
	}
	if len(labels) != len(target) {
		return labels, false
	}
	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	return labels, slices.Equal(sorted, target)
}

// ContainsClade reports whether any node of t has exactly the sorted leaf
// labels given.
func (t *Tree) ContainsClade(sortedLabels []string) bool {
	return t.Root.ContainsClade(sortedLabels)
}

// ContainsCladeOf reports whether the clade rooted at n, which may belong to
// another tree, also appears in t.
func (t *Tree) ContainsCladeOf(n *Node) bool {
	return t.Root.ContainsClade(n.SortedLeafLabels())
}

// CladeIndex holds every clade of a tree for constant time lookups. It is
// immutable once built and safe for concurrent use.
type CladeIndex struct {
	clades map[string]struct{}
}

// NewCladeIndex indexes every clade of t.
func NewCladeIndex(t *Tree) *CladeIndex {
	idx := &CladeIndex{clades: make(map[string]struct{})}
	for _, set := range t.SubtreeLeafLabelSets() {
		idx.clades[cladeKey(set)] = struct{}{}
	}
	return idx
}

// Contains reports whether the indexed tree has a node with exactly the sorted
// leaf labels given.
func (idx *CladeIndex) Contains(sortedLabels []string) bool {
	_, ok := idx.clades[cladeKey(sortedLabels)]
	return ok
}

// Len returns the number of distinct clades in the index.
func (idx *CladeIndex) Len() int {
	return len(idx.clades)
}

// cladeKey joins labels with NUL, which does not appear in taxon names.
func cladeKey(sortedLabels []string) string {
	return strings.Join(sortedLabels, "\x00")
}
