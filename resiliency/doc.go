/*
Package resiliency measures how well the clades of a reference tree survive the
removal of single taxa.

The input is a reference tree and, for every taxon in it, a set of jackknife
replicate trees built from an alignment with that taxon left out. A clade C of
the reference tree is tested only against the replicates of taxa outside C
(removing a member of C changes C trivially). Its score is the fraction of those
replicates that contain a node with exactly the leaves of C.

Scores are stored on the reference tree under newick.ResiliencyKey. Every
internal node other than the root is scored, parents of leaves included. The
root always gets the integer 0, and leaves get no score. A node for which no
replicate is relevant gets no score either.
*/
package resiliency
