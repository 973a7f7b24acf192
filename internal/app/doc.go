/*
Package app runs the taxa resiliency pipeline: it reads the main tree and the
jackknifed replicate trees, validates that they belong together, scores every
clade of the main tree and writes the annotated tree in each requested format.
*/
package app
