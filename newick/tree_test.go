package newick

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *Tree {
	t.Helper()
	tree, err := Parse("test", s)
	require.NoError(t, err)
	return tree
}

func TestWalkPostOrder(t *testing.T) {
	tree := mustParse(t, "(A,B,(C,D)E)F;")
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, labels(tree.Nodes()))

	// Descendents always come before their ancestors.
	pos := make(map[*Node]int)
	for i, n := range tree.Nodes() {
		pos[n] = i
	}
	for _, n := range tree.Nodes() {
		for _, child := range n.Children {
			assert.Less(t, pos[child], pos[n])
		}
	}
}

func TestWalkerSinglePass(t *testing.T) {
	tree := mustParse(t, "((A,B)X,C)R;")
	w := tree.Walk()
	var got []string
	for {
		n, ok := w.Next()
		if !ok {
			break
		}
		got = append(got, n.Label)
	}
	assert.Equal(t, []string{"A", "B", "X", "C", "R"}, got)

	_, ok := w.Next()
	assert.False(t, ok, "an exhausted walker stays exhausted")

	// A fresh walker starts over.
	n, ok := tree.Walk().Next()
	require.True(t, ok)
	assert.Equal(t, "A", n.Label)
}

func TestWalkLeaf(t *testing.T) {
	leaf := NewNode("A")
	assert.Equal(t, []*Node{leaf}, leaf.Nodes())
}

func TestLeafLabelsOrder(t *testing.T) {
	tree := mustParse(t, "((A,B),(C,D));")
	assert.Equal(t, []string{"A", "B", "C", "D"}, tree.LeafLabels())

	// Reversing every child list changes the sequence but not its members.
	for _, n := range tree.Nodes() {
		for i, j := 0, len(n.Children)-1; i < j; i, j = i+1, j-1 {
			n.Children[i], n.Children[j] = n.Children[j], n.Children[i]
		}
	}
	assert.Equal(t, []string{"D", "C", "B", "A"}, tree.LeafLabels())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, tree.LeafLabels())
	assert.Equal(t, []string{"A", "B", "C", "D"}, tree.Root.SortedLeafLabels())
}

func TestSubtreeLeafLabelSets(t *testing.T) {
	tree := mustParse(t, "((B,A),(D,C));")
	assert.Equal(t, [][]string{
		{"B"}, {"A"}, {"A", "B"},
		{"D"}, {"C"}, {"C", "D"},
		{"A", "B", "C", "D"},
	}, tree.SubtreeLeafLabelSets())
	assert.Equal(t, []string{"B", "A", "A,B", "D", "C", "C,D", "A,B,C,D"},
		tree.SubtreeLeafLabelSetStrings())
}

func TestNodeMetadata(t *testing.T) {
	n := NewNode("A")
	assert.False(t, n.Metadata.Has("x"))
	assert.Empty(t, n.Metadata.Keys())

	n.Set("z", StringValue("last"))
	n.Set("a", IntValue(1))
	n.SetBranchLength(FloatValue(0.5))
	assert.Equal(t, []string{"a", BranchLengthKey, "z"}, n.Metadata.Keys())

	v, ok := n.Metadata.Get("z")
	require.True(t, ok)
	s, ok := v.Str()
	assert.True(t, ok)
	assert.Equal(t, "last", s)
	assert.False(t, v.IsNumber())

	n.Unset("z")
	assert.False(t, n.Metadata.Has("z"))
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{IntValue(0), "0"},
		{IntValue(-12), "-12"},
		{FloatValue(0), "0.0"},
		{FloatValue(1.5), "1.5"},
		{FloatValue(2), "2.0"},
		{FloatValue(0.000125), "0.000125"},
		{StringValue("abc"), "abc"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.v.String())
	}

	f, ok := IntValue(3).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)
	_, ok = StringValue("3").Float()
	assert.False(t, ok)
}

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{IntValue(7), `7`},
		{FloatValue(2), `2.0`},
		{StringValue("<a & b>"), `"<a & b>"`},
		{StringValue("say \"hi\"\n"), `"say \"hi\"\n"`},
	}
	for _, test := range tests {
		bs, err := test.v.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, test.want, string(bs))
	}

	_, err := FloatValue(math.Inf(1)).MarshalJSON()
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", IntValue(1).Kind().String())
	assert.Equal(t, "float", FloatValue(1).Kind().String())
	assert.Equal(t, "string", StringValue("").Kind().String())
	assert.True(t, FloatValue(1).IsNumber())
}

func TestTreeString(t *testing.T) {
	tree := mustParse(t, "(A:1,(B,C)D)ROOT;")
	assert.Equal(t, "ROOT\n  A (1)\n  D\n    B\n    C\n", tree.String())
}
