/*
Package newick provides facilities for reading and writing phylogenetic trees in
the Newick format, and for comparing the clades of one tree against another.
The format used is roughly equivalent to the conventions established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html.

Comments (any text between '[' and ']') are discarded while reading, except
inside quoted labels, where brackets are kept as part of the label. Labels may
be quoted with either single or double quotes; there is no escaping inside a
quoted label. As a consequence, a label holding both kinds of quote can be
built in memory but is not written in a form that can be read back. Branch lengths are kept in a node's metadata under the key
"branch_length" and remember whether they were written as integers or as real
numbers.

Every tree is read from a single string holding exactly one tree terminated by
a ';'. Only whitespace may follow the terminal.

Trees can be written back out as Newick (optionally with metadata embedded in
comments), as JSON, as an ASCII drawing and as a Mermaid graph.
*/
package newick
