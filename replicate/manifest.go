// Package replicate finds and loads the jackknife replicate trees that go with
// a reference tree.
//
// Replicates are listed either in a file of file names (FOFN) with one
// "taxon<TAB>path" row per replicate, or laid out on disk as
// <dir>/<taxon>/tree-<N>.<ext>.
package replicate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultExt is the tree file extension ScanDir looks for by default.
const DefaultExt = "nwk"

// Manifest maps each taxon to the paths of the trees built without it.
type Manifest map[string][]string

// Add appends a replicate path for taxon.
func (m Manifest) Add(taxon, path string) {
	m[taxon] = append(m[taxon], path)
}

// Taxa returns the taxa of m in ascending order.
func (m Manifest) Taxa() []string {
	taxa := maps.Keys(m)
	slices.Sort(taxa)
	return taxa
}

// Counts returns the number of replicates of every taxon.
func (m Manifest) Counts() map[string]int {
	counts := make(map[string]int, len(m))
	for taxon, paths := range m {
		counts[taxon] = len(paths)
	}
	return counts
}

// ReadFOFN reads a manifest of "taxon<TAB>path" rows. There is no header row
// and every non-empty line must have exactly two columns.
func ReadFOFN(r io.Reader) (Manifest, error) {
	m := make(Manifest)
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if len(text) == 0 {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 || len(fields[0]) == 0 || len(fields[1]) == 0 {
			return nil, fmt.Errorf("Error on line %d: expected exactly two "+
				"tab-separated columns (taxon and path), but got '%s'.",
				line, text)
		}
		m.Add(fields[0], fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadFOFNFile reads a manifest from the file at path.
func ReadFOFNFile(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadFOFN(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ScanDir builds a manifest from a directory holding one subdirectory per
// taxon, each containing files named tree-<N>.<ext>. Other files and
// directories are ignored. A leading '.' on ext is optional.
func ScanDir(dir, ext string) (Manifest, error) {
	ext = strings.TrimPrefix(ext, ".")
	if len(ext) == 0 {
		ext = DefaultExt
	}
	pattern := regexp.MustCompile(`^tree-[0-9]+\.` + regexp.QuoteMeta(ext) + `$`)

	taxa, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	m := make(Manifest)
	for _, taxon := range taxa {
		if !taxon.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, taxon.Name()))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if f.Type().IsRegular() && pattern.MatchString(f.Name()) {
				m.Add(taxon.Name(), filepath.Join(dir, taxon.Name(), f.Name()))
			}
		}
	}
	return m, nil
}

var trailingNumber = regexp.MustCompile(`([0-9]+)[^0-9]*$`)

// Sort orders the paths of every taxon by the last number in their file name
// (ignoring the extension), so tree-2 comes before tree-10. Paths without a
// number come last, in lexical order.
func (m Manifest) Sort() {
	for _, paths := range m {
		slices.SortStableFunc(paths, func(a, b string) bool {
			na, oka := replicateNumber(a)
			nb, okb := replicateNumber(b)
			switch {
			case oka && okb && na != nb:
				return na < nb
			case oka != okb:
				return oka
			}
			return a < b
		})
	}
}

func replicateNumber(path string) (int, bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	match := trailingNumber.FindStringSubmatch(stem)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolve makes every path absolute and checks that it names a regular file.
func (m Manifest) Resolve() error {
	for _, taxon := range m.Taxa() {
		for i, path := range m[taxon] {
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("Could not resolve '%s' (taxon: %s): %w",
					path, taxon, err)
			}
			info, err := os.Stat(abs)
			if err != nil {
				return fmt.Errorf("'%s' does not exist or cannot be read "+
					"(taxon: %s): %w", path, taxon, err)
			}
			if !info.Mode().IsRegular() {
				return fmt.Errorf("'%s' is not a regular file (taxon: %s).",
					path, taxon)
			}
			m[taxon][i] = abs
		}
	}
	return nil
}
