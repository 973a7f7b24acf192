package replicate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/TuftsBCB/taxares/newick"
)

// Load parses every tree in m, at most workers files at a time (no limit if
// workers <= 0). The trees of each taxon keep the order of m and are named
// "<taxon>-<index>". Every tree must have unique leaf labels. The first error
// stops the remaining work and is returned.
func Load(ctx context.Context, m Manifest, workers int) (map[string][]*newick.Tree, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	trees := make(map[string][]*newick.Tree, len(m))
	for taxon, paths := range m {
		trees[taxon] = make([]*newick.Tree, len(paths))
	}
	for _, taxon := range m.Taxa() {
		for i, path := range m[taxon] {
			dst := &trees[taxon][i]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				t, err := newick.ReadFile(path, fmt.Sprintf("%s-%d", taxon, i))
				if err != nil {
					return fmt.Errorf("Failed to read jackknifed tree "+
						"(taxon: %s): %w", taxon, err)
				}
				if err := t.CheckUniqueLeaves(); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				*dst = t
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}
