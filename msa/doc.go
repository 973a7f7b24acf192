/*
Package msa reads multiple sequence alignments in interleaved PHYLIP format and
"jackknifes" them: for every taxon it produces a copy of the alignment with that
taxon's row removed, written out as aligned FASTA. Trees built from those
copies are the replicates used to measure taxa resiliency.

The PHYLIP layout accepted is the one below. The first line holds the number of
taxa and the number of alignment columns. The first block gives each taxon's
name followed by the start of its sequence (which may be split by whitespace).
Every later block is separated from the previous one by exactly one blank line
and continues the sequences in the same order.

	3 12
	Cignobilis ACGTAC
	Rmuscosa   ACGTAA
	Aglosso    ACGAAC

	GTACGT
	GTACGA
	GTTCGT
*/
package msa
