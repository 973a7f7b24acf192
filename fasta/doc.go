/*
Package fasta provides routines for reading and writing FASTA files, which is
the format the jackknifed alignments are written in.

The format used is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

By default, sequences are checked to make sure they contain only valid
alignment characters: a-z, A-Z, '*', '-', '.' and '?'. Case is preserved.
*/
package fasta
