package resiliency

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/TuftsBCB/taxares/newick"
)

// ValidationError reports replicate input that cannot be scored against the
// reference tree.
type ValidationError struct {
	Reason string

	// The taxa at fault, if the problem concerns particular taxa.
	Taxa []string

	// A replicate count histogram (see Histogram) when the counts differ.
	Histogram string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Reason)
	if len(e.Taxa) > 0 {
		fmt.Fprintf(&b, " Taxa: %s.", strings.Join(e.Taxa, ", "))
	}
	if len(e.Histogram) > 0 {
		b.WriteString(" Here is the replicate histogram:\n")
		b.WriteString(e.Histogram)
	}
	return b.String()
}

// CheckTaxa makes sure the taxa of the reference tree and the taxa that have
// replicates are the same set.
func CheckTaxa(refTaxa, replicateTaxa []string) error {
	inRef := make(map[string]bool, len(refTaxa))
	for _, taxon := range refTaxa {
		inRef[taxon] = true
	}
	inReps := make(map[string]bool, len(replicateTaxa))
	for _, taxon := range replicateTaxa {
		inReps[taxon] = true
	}

	var missing, extra []string
	for taxon := range inRef {
		if !inReps[taxon] {
			missing = append(missing, taxon)
		}
	}
	for taxon := range inReps {
		if !inRef[taxon] {
			extra = append(extra, taxon)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return &ValidationError{
			Reason: "One or more taxa from the main tree have no jackknifed trees.",
			Taxa:   missing,
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)
		return &ValidationError{
			Reason: "One or more taxa with jackknifed trees are not in the main tree.",
			Taxa:   extra,
		}
	}
	return nil
}

// CheckReplicateCounts makes sure every taxon has the same number of
// replicates. The error carries a histogram of the counts.
func CheckReplicateCounts(counts map[string]int) error {
	all := maps.Values(counts)
	for _, c := range all {
		if c != all[0] {
			return &ValidationError{
				Reason:    "All taxa should have the same number of replicates.",
				Histogram: Histogram(all),
			}
		}
	}
	return nil
}

// CheckReplicatesOmitTaxon makes sure no replicate tree still has a leaf
// labeled with the taxon it was built without.
func CheckReplicatesOmitTaxon(replicates map[string][]*newick.Tree) error {
	var bad []string
	for taxon, trees := range replicates {
		for _, t := range trees {
			if slices.Contains(t.LeafLabels(), taxon) {
				bad = append(bad, taxon)
				break
			}
		}
	}
	if len(bad) > 0 {
		slices.Sort(bad)
		return &ValidationError{
			Reason: "Some jackknifed trees contain the taxon that should have been removed.",
			Taxa:   bad,
		}
	}
	return nil
}

// Validate runs CheckTaxa, CheckReplicateCounts and CheckReplicatesOmitTaxon
// for a reference tree and its loaded replicates.
func Validate(ref *newick.Tree, replicates map[string][]*newick.Tree) error {
	if err := CheckTaxa(ref.LeafLabels(), maps.Keys(replicates)); err != nil {
		return err
	}
	counts := make(map[string]int, len(replicates))
	for taxon, trees := range replicates {
		counts[taxon] = len(trees)
	}
	if err := CheckReplicateCounts(counts); err != nil {
		return err
	}
	return CheckReplicatesOmitTaxon(replicates)
}

// Histogram draws how many taxa have each replicate count, one line per
// distinct count in ascending order:
//
//	49|= (1)
//	50|=== (3)
func Histogram(counts []int) string {
	freq := make(map[int]int)
	for _, c := range counts {
		freq[c]++
	}
	keys := maps.Keys(freq)
	slices.Sort(keys)
	if len(keys) == 0 {
		return ""
	}
	width := len(strconv.Itoa(keys[len(keys)-1]))

	var b strings.Builder
	for _, c := range keys {
		fmt.Fprintf(&b, "%*d|%s (%d)\n", width, c, strings.Repeat("=", freq[c]), freq[c])
	}
	return b.String()
}
