package newick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsClade(t *testing.T) {
	tree := mustParse(t, "((A,B),C);")
	assert.True(t, tree.ContainsClade([]string{"A", "B"}))
	assert.False(t, tree.ContainsClade([]string{"A", "C"}))
	assert.True(t, tree.ContainsClade([]string{"A", "B", "C"}))
	assert.True(t, tree.ContainsClade([]string{"C"}))
	assert.False(t, tree.ContainsClade([]string{"D"}))
	assert.False(t, tree.ContainsClade(nil))
}

func TestContainsCladeIgnoresTopologyInside(t *testing.T) {
	tree := mustParse(t, "((C,(B,A)),(D,E));")
	assert.True(t, tree.ContainsClade([]string{"A", "B", "C"}))
	assert.True(t, tree.ContainsClade([]string{"D", "E"}))
	assert.False(t, tree.ContainsClade([]string{"A", "C"}))
}

func TestEveryCladeContainsItself(t *testing.T) {
	tree := mustParse(t, "(((A,B)X,(C,(D,E)Y)Z)W,(F,G)V,H)R;")
	idx := NewCladeIndex(tree)
	for _, n := range tree.Nodes() {
		assert.True(t, tree.ContainsCladeOf(n), "clade at %q", n.Label)
		assert.True(t, n.ContainsClade(n.SortedLeafLabels()))
		assert.True(t, idx.Contains(n.SortedLeafLabels()))
	}
}

func TestContainsCladeOfOtherTree(t *testing.T) {
	ref := mustParse(t, "(((A,B),C),(D,E));")
	rep := mustParse(t, "((A,B),(D,E));")
	for _, n := range ref.Nodes() {
		want := false
		switch n.Newick() {
		case "A", "B", "D", "E", "(A,B)", "(D,E)":
			want = true
		}
		assert.Equal(t, want, rep.ContainsCladeOf(n), n.Newick())
	}
}

func TestCladeEqual(t *testing.T) {
	a := mustParse(t, "((A,B),C);").Root
	b := mustParse(t, "(C,(B,A));").Root
	c := mustParse(t, "(C,(B,D));").Root
	assert.True(t, CladeEqual(a, b))
	assert.False(t, CladeEqual(a, c))
	assert.True(t, CladeEqual(a.Children[0], b.Children[1]))
}

func TestCladeIndexAgreesWithSearch(t *testing.T) {
	tree := mustParse(t, "((A,(B,C)),((D,E),F));")
	idx := NewCladeIndex(tree)
	assert.Equal(t, 11, idx.Len())

	queries := [][]string{
		{"A"}, {"B", "C"}, {"A", "B", "C"}, {"D", "E"}, {"D", "E", "F"},
		{"A", "B"}, {"C", "D"}, {"E", "F"}, {"A", "B", "C", "D", "E", "F"},
		{"A", "B", "C", "D", "E"}, {"G"},
	}
	for _, q := range queries {
		assert.Equal(t, tree.ContainsClade(q), idx.Contains(q), "%v", q)
	}
}
