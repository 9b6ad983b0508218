// Package shuffle implements yamshuf's four k-mer-preserving shuffle
// algorithms: a plain Fisher-Yates permutation (k=1), a linear block
// shuffle, a first-order Markov-chain resampling, and an exact k-mer
// composition-preserving shuffle built on a random Eulerian trail through
// the sequence's de Bruijn graph.
package shuffle

import "yamscan-core/alphabet"

// pow5 holds 5^0..5^12: kmers are packed into base-5 integers (4 real
// bases plus the shuffle-time "invalid" sentinel used while building the
// Eulerian trail), so a k-mer table is addressable directly by that value
// without a hash map.
var pow5 = func() [13]uint64 {
	var t [13]uint64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 5
	}
	return t
}()

const indexDNA = "ACGTN"
const indexRNA = "ACGUN"

// letters returns the canonical uppercase alphabet a shuffle should
// reconstruct sequence letters from.
func letters(isDNA bool) string {
	if isDNA {
		return indexDNA
	}
	return indexRNA
}

// charsToKmer packs seq[offset:offset+k] into a base-5 integer, high digit
// first, using the alphabet package's base index (0..3, or 4 for
// non-ACGTU).
func charsToKmer(seq []byte, k, offset int) uint64 {
	var kmer uint64
	for j := 0; j < k; j++ {
		kmer += pow5[k-1-j] * uint64(alphabet.Index(seq[offset+j]))
	}
	return kmer
}

// TableSize returns 5^k, the size of k-mer count table Markov and
// CountKmers expect for a given k.
func TableSize(k int) int { return int(pow5[k]) }

// CountKmers tallies every overlapping k-mer of seq into tab, a table of
// size 5^k. tab must already be zeroed; a caller reshuffling many
// sequences of the same k reuses one table across calls, matching a
// per-worker Scratch's realloc-once-and-reuse discipline.
func CountKmers(seq []byte, k int, tab []uint64) {
	for i := 0; i <= len(seq)-k; i++ {
		tab[charsToKmer(seq, k, i)]++
	}
}
