package resiliency

import (
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/unixpickle/essentials"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/TuftsBCB/taxares/newick"
)

// DefaultCacheSize is the number of replicate clade indexes a Scorer keeps
// when CacheSize is not set.
const DefaultCacheSize = 4096

// NodeScore is the outcome of scoring one node of the reference tree.
type NodeScore struct {
	Node *newick.Node

	// Recovered is the number of relevant replicates containing the clade,
	// out of Examined relevant replicates.
	Recovered int
	Examined  int
}

// Defined reports whether any replicate was relevant to the node.
func (ns NodeScore) Defined() bool {
	return ns.Examined > 0
}

// Score returns Recovered/Examined, or 0 when the score is undefined.
func (ns NodeScore) Score() float64 {
	if ns.Examined == 0 {
		return 0
	}
	return float64(ns.Recovered) / float64(ns.Examined)
}

// A Scorer computes taxa resiliency scores. The zero value is ready to use.
type Scorer struct {
	// Number of nodes scored at once. If it's <= 0, GOMAXPROCS is used.
	Workers int

	// Maximum number of replicate trees whose clade index is kept in
	// memory. If it's <= 0, DefaultCacheSize is used.
	CacheSize int

	// Receives one debug line per scored node. May be nil.
	Logger *slog.Logger
}

// Score annotates every node of ref with its resiliency score and returns the
// scores of the internal non-root nodes in post-order.
//
// replicates maps each taxon to the trees built without it. Neither ref's
// topology nor any replicate is modified; each node's metadata is written only
// by the worker scoring that node.
func (s *Scorer) Score(ref *newick.Tree, replicates map[string][]*newick.Tree) ([]NodeScore, error) {
	size := s.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	indexes, err := lru.New[*newick.Tree, *newick.CladeIndex](size)
	if err != nil {
		return nil, err
	}

	taxa := maps.Keys(replicates)
	slices.Sort(taxa)

	var targets []*newick.Node
	for _, n := range ref.Nodes() {
		switch {
		case n == ref.Root:
			n.Set(newick.ResiliencyKey, newick.IntValue(0))
		case n.IsLeaf():
			n.Unset(newick.ResiliencyKey)
		default:
			targets = append(targets, n)
		}
	}

	workers := s.Workers
	if workers < 0 {
		workers = 0
	}
	log := s.logger()
	scores := make([]NodeScore, len(targets))
	essentials.ConcurrentMap(workers, len(targets), func(i int) {
		n := targets[i]
		clade := n.SortedLeafLabels()
		ns := NodeScore{Node: n}
		for _, taxon := range taxa {
			if _, inside := slices.BinarySearch(clade, taxon); inside {
				continue
			}
			for _, rep := range replicates[taxon] {
				ns.Examined++
				if cladeIndex(indexes, rep).Contains(clade) {
					ns.Recovered++
				}
			}
		}

		if ns.Defined() {
			n.Set(newick.ResiliencyKey, newick.FloatValue(ns.Score()))
			log.Debug("Scored clade.", "clade", clade,
				"recovered", ns.Recovered, "examined", ns.Examined)
		} else {
			n.Unset(newick.ResiliencyKey)
			log.Debug("No relevant replicates; clade left unscored.",
				"clade", clade)
		}
		scores[i] = ns
	})
	return scores, nil
}

// cladeIndex returns the index of rep, building it on a cache miss. Two
// workers may race to build the same index; both results are identical.
func cladeIndex(cache *lru.Cache[*newick.Tree, *newick.CladeIndex], rep *newick.Tree) *newick.CladeIndex {
	if idx, ok := cache.Get(rep); ok {
		return idx
	}
	idx := newick.NewCladeIndex(rep)
	cache.Add(rep, idx)
	return idx
}

func (s *Scorer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
