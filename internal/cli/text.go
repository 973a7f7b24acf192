package cli

// Version is the program version. Release builds set it with -ldflags.
var Version = "1.0.0"

const usageText = `
taxares - taxa resiliency of a phylogenetic tree.

Calculates how resilient the topology of a tree is to the removal of taxa. For
every taxon, the alignment is copied without it and trees are rebuilt several
times. Each internal node of the main tree is then scored by the fraction of
rebuilt trees (of the taxa outside the node's clade) that still contain the
node's clade.

Replicate trees are found in <jackknife-tree>/<taxon>/tree-<N>.<ext>, or listed
in a tab-separated file of '<taxon>\t<path>' lines given with -f.

Usage:
  taxares [options]

Options:
`

// Citation is printed by -cite.
const Citation = `Citation:
Please include a link to this repository and the following citation:

Pickett BD, Powell GS, Ridge PG, Bybee SM. Paper title. _journal_. Year.
	Volume(Issue):pages.
`

// License is printed by -license.
const License = `License:
Copyright (c) 2019 Brandon Pickett

Permission is hereby granted, free of charge, to any person
obtaining a copy of this software and associated documentation
files (the "Software"), to deal in the Software without
restriction, including without limitation the rights to use,
copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the
Software is furnished to do so, subject to the following
conditions:

The above copyright notice and this permission notice shall be
included in all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR
THE USE OR OTHER DEALINGS IN THE SOFTWARE.
`
