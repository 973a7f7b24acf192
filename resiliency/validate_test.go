package resiliency

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuftsBCB/taxares/newick"
)

func TestCheckTaxa(t *testing.T) {
	assert.NoError(t, CheckTaxa([]string{"A", "B", "C"}, []string{"C", "A", "B"}))

	err := CheckTaxa([]string{"A", "B", "C"}, []string{"A"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"B", "C"}, verr.Taxa)
	assert.Contains(t, err.Error(), "main tree have no jackknifed trees")

	err = CheckTaxa([]string{"A"}, []string{"A", "Z"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Z"}, verr.Taxa)
	assert.Contains(t, err.Error(), "not in the main tree")
}

func TestCheckReplicateCounts(t *testing.T) {
	assert.NoError(t, CheckReplicateCounts(map[string]int{"A": 50, "B": 50}))
	assert.NoError(t, CheckReplicateCounts(nil))

	err := CheckReplicateCounts(map[string]int{"A": 50, "B": 49, "C": 50, "D": 50})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "49|= (1)\n50|=== (3)\n", verr.Histogram)
	assert.Contains(t, err.Error(), "replicate histogram:\n49|= (1)\n")
}

func TestHistogram(t *testing.T) {
	assert.Equal(t, "", Histogram(nil))
	assert.Equal(t, " 9|== (2)\n10|= (1)\n", Histogram([]int{10, 9, 9}))
}

func TestValidate(t *testing.T) {
	ref := parse(t, "((A,B),C);")
	reps := map[string][]*newick.Tree{
		"A": repeat(t, "(B,C);", 2),
		"B": repeat(t, "(A,C);", 2),
		"C": repeat(t, "(A,B);", 2),
	}
	assert.NoError(t, Validate(ref, reps))

	reps["C"] = repeat(t, "(A,B);", 1)
	var verr *ValidationError
	require.True(t, errors.As(Validate(ref, reps), &verr))
	assert.NotEmpty(t, verr.Histogram)

	reps["C"] = repeat(t, "(A,(B,C));", 2)
	require.True(t, errors.As(Validate(ref, reps), &verr))
	assert.Equal(t, []string{"C"}, verr.Taxa)

	delete(reps, "C")
	require.True(t, errors.As(Validate(ref, reps), &verr))
	assert.Equal(t, []string{"C"}, verr.Taxa)
}
