// Package seqstats computes the per-sequence base-composition report
// yamscan prints instead of scanning when -s is given without -m/-1: size,
// GC%, and non-standard base count.
package seqstats

import "math"

// Stats is one sequence's base-composition summary.
type Stats struct {
	Size      int64
	GCPercent float64 // NaN when the sequence is empty
	Unknowns  int64   // bases that aren't A/C/G/T/U in either case
}

// Compute tallies seq's base composition: GC% and unknown count are
// derived from a single pass over a 256-entry byte histogram, so counting
// stays branch-light regardless of case or IUPAC ambiguity codes present.
func Compute(seq []byte) Stats {
	var counts [256]int64
	for _, b := range seq {
		counts[b]++
	}
	standard := counts['A'] + counts['a'] +
		counts['C'] + counts['c'] +
		counts['G'] + counts['g'] +
		counts['T'] + counts['t'] +
		counts['U'] + counts['u']
	gc := counts['G'] + counts['C'] + counts['g'] + counts['c']

	s := Stats{Size: int64(len(seq)), Unknowns: int64(len(seq)) - standard}
	if standard == 0 {
		s.GCPercent = math.NaN()
	} else {
		s.GCPercent = 100.0 * float64(gc) / float64(standard)
	}
	return s
}
