// Package pipeline splits a motif list into a fixed number of statically
// partitioned worker slices, each of which builds its motifs' score
// distributions and scans them, reusing one dist.Scratch per worker across
// its whole slice.
package pipeline
