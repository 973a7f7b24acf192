package msa

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TuftsBCB/taxares/fasta"
)

// Jackknife returns the alignment without row i. The rows are shared with a.
func (a Alignment) Jackknife(i int) Alignment {
	entries := make([]fasta.Entry, 0, len(a.Entries)-1)
	entries = append(entries, a.Entries[:i]...)
	entries = append(entries, a.Entries[i+1:]...)
	return Alignment{Entries: entries}
}

// WriteJackknife writes one unwrapped FASTA file per row of a into dir, named
// "<taxon>.fa" and holding every row except that taxon's. If written is not
// nil, it's called with each taxon name before its file is written.
func WriteJackknife(dir string, a Alignment, written func(taxon string)) error {
	for i, entry := range a.Entries {
		taxon := entry.Header
		if strings.ContainsAny(taxon, `/\`) || taxon == "." || taxon == ".." {
			return fmt.Errorf("Taxon name '%s' cannot be used as a file name.", taxon)
		}
		if written != nil {
			written(taxon)
		}
		if err := writeFasta(filepath.Join(dir, taxon+".fa"), a.Jackknife(i)); err != nil {
			return err
		}
	}
	return nil
}

func writeFasta(path string, a Alignment) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := fasta.NewWriter(f)
	w.Columns = 0
	return w.WriteAll(a.Entries)
}
