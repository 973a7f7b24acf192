package replicate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuftsBCB/taxares/newick"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestReadFOFN(t *testing.T) {
	input := "A\tdata/A/tree-1.nwk\n" +
		"A\tdata/A/tree-2.nwk\n" +
		"\n" +
		"B\tdata/B/tree-1.nwk\r\n"
	m, err := ReadFOFN(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Manifest{
		"A": {"data/A/tree-1.nwk", "data/A/tree-2.nwk"},
		"B": {"data/B/tree-1.nwk"},
	}, m)
	assert.Equal(t, []string{"A", "B"}, m.Taxa())
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, m.Counts())
}

func TestReadFOFNBadRows(t *testing.T) {
	for _, input := range []string{
		"A data/A/tree-1.nwk\n",
		"A\tpath\textra\n",
		"A\t\n",
		"A\tok\n\tmissing-taxon\n",
	} {
		_, err := ReadFOFN(strings.NewReader(input))
		assert.Error(t, err, "%q", input)
	}

	_, err := ReadFOFN(strings.NewReader("A\tok\nbad\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadFOFNFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trees.tsv")
	writeFile(t, path, "A\tx.nwk\n")
	m, err := ReadFOFNFile(path)
	require.NoError(t, err)
	assert.Equal(t, Manifest{"A": {"x.nwk"}}, m)

	_, err = ReadFOFNFile(filepath.Join(dir, "nope.tsv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A", "tree-1.treefile"), "(B,C);")
	writeFile(t, filepath.Join(dir, "A", "tree-2.treefile"), "(B,C);")
	writeFile(t, filepath.Join(dir, "A", "tree-3.treefile.bak"), "(B,C);")
	writeFile(t, filepath.Join(dir, "A", "notes.txt"), "")
	writeFile(t, filepath.Join(dir, "B", "tree-7.treefile"), "(A,C);")
	writeFile(t, filepath.Join(dir, "B", "tree-x.treefile"), "(A,C);")
	writeFile(t, filepath.Join(dir, "stray.treefile"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "C"), 0755))

	m, err := ScanDir(dir, ".treefile")
	require.NoError(t, err)
	m.Sort()
	assert.Equal(t, Manifest{
		"A": {
			filepath.Join(dir, "A", "tree-1.treefile"),
			filepath.Join(dir, "A", "tree-2.treefile"),
		},
		"B": {filepath.Join(dir, "B", "tree-7.treefile")},
	}, m)

	m, err = ScanDir(dir, "")
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = ScanDir(filepath.Join(dir, "missing"), DefaultExt)
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	m := Manifest{"A": {
		"d/tree-10.nwk", "d/tree-2.nwk", "d/other.nwk", "d/tree-1.nwk", "d/rep_3_final.nwk",
	}}
	m.Sort()
	assert.Equal(t, []string{
		"d/tree-1.nwk", "d/tree-2.nwk", "d/rep_3_final.nwk", "d/tree-10.nwk", "d/other.nwk",
	}, m["A"])
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A", "tree-1.nwk")
	writeFile(t, path, "(B,C);")

	m := Manifest{"A": {path}}
	require.NoError(t, m.Resolve())
	assert.True(t, filepath.IsAbs(m["A"][0]))

	m = Manifest{"A": {filepath.Join(dir, "A", "tree-2.nwk")}}
	err := m.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taxon: A")

	m = Manifest{"A": {filepath.Join(dir, "A")}}
	err = m.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	m := make(Manifest)
	for _, taxon := range []string{"A", "B", "C"} {
		for i, nwk := range []string{"(X,Y);", "((X,Y),Z);", "(Z,(X,Y));"} {
			path := filepath.Join(dir, taxon, "tree-"+string(rune('1'+i))+".nwk")
			writeFile(t, path, nwk)
			m.Add(taxon, path)
		}
	}

	trees, err := Load(context.Background(), m, 2)
	require.NoError(t, err)
	require.Len(t, trees, 3)
	for _, taxon := range []string{"A", "B", "C"} {
		require.Len(t, trees[taxon], 3)
		assert.Equal(t, taxon+"-0", trees[taxon][0].Name)
		assert.Equal(t, []string{"X", "Y"}, trees[taxon][0].LeafLabels())
		assert.Equal(t, []string{"Z", "X", "Y"}, trees[taxon][2].LeafLabels())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.nwk")
	writeFile(t, good, "(X,Y);")

	bad := filepath.Join(dir, "bad.nwk")
	writeFile(t, bad, "(X,Y;")
	_, err := Load(context.Background(), Manifest{"A": {good, bad}}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taxon: A")
	assert.True(t, errors.Is(err, newick.ErrUnexpectedChar))

	dup := filepath.Join(dir, "dup.nwk")
	writeFile(t, dup, "(X,(X,Y));")
	_, err = Load(context.Background(), Manifest{"A": {dup}}, 1)
	var derr *newick.DuplicateLeafError
	assert.True(t, errors.As(err, &derr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, Manifest{"A": {good}}, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}
