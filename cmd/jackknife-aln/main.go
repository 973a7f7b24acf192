// Command jackknife-aln reads an interleaved PHYLIP alignment and writes one
// FASTA alignment per taxon, each missing that taxon, to an output directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/TuftsBCB/taxares/msa"
)

func main() {
	var outDir string
	var verbose bool
	flag.StringVar(&outDir, "o", "data/jackknife/aln", "directory to write <taxon>.fa files to")
	flag.BoolVar(&verbose, "verbose", false, "log every file written")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: jackknife-aln [flags] <alignment.phy>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	f, err := os.Open(flag.Arg(0))
	essentials.Must(err)
	aln, err := msa.ReadPhylip(f)
	f.Close()
	if err != nil {
		essentials.Die(fmt.Sprintf("%s: %s", flag.Arg(0), err))
	}
	slog.Info("Read alignment.", "taxa", len(aln.Entries), "positions", aln.Len())

	essentials.Must(os.MkdirAll(outDir, 0o755))
	essentials.Must(msa.WriteJackknife(outDir, aln, func(taxon string) {
		slog.Debug("Writing jackknifed alignment.", "taxon", taxon)
	}))
	slog.Info("Wrote jackknifed alignments.", "dir", outDir, "files", len(aln.Entries))
}
