package shuffle

import (
	"yamscan-core/alphabet"
	"yamscan-core/rng"
)

// pickNextLetterWeighted samples one of 5 buckets (A/C/G/T/non-standard)
// given their raw counts, matching cumsum_and_pick_next_letter: it is used
// while building a random Eulerian trail, where every bucket (even a zero
// one) participates in the cumulative sum.
func pickNextLetterWeighted(counts []uint64, g *rng.RNG) uint64 {
	var cum [5]uint64
	cum[0] = counts[0]
	for i := 1; i < 5; i++ {
		cum[i] = cum[i-1] + counts[i]
	}
	r := uint64(g.Float64() * float64(cum[4]))
	if r >= cum[4] {
		r = cum[4] - 1
	}
	for i := 0; i < 4; i++ {
		if r < cum[i] {
			return uint64(i)
		}
	}
	return 4
}

// pickNextLetterMarkov samples a next base from a context row that has
// already been converted to a running cumulative sum (cum[4] holds the
// row's total), matching pick_next_letter. A context with zero total
// (never observed in the input) falls back to a uniform choice among the
// four standard bases.
func pickNextLetterMarkov(cum []uint64, g *rng.RNG) uint64 {
	total := cum[4]
	if total == 0 {
		return uint64(g.IntN(4))
	}
	r := uint64(g.Float64() * float64(total))
	if r >= total {
		r = total - 1
	}
	for i := 0; i < 4; i++ {
		if r < cum[i] {
			return uint64(i)
		}
	}
	return 4
}

// Markov resamples seq in place from a first-order (k-1)-th-context Markov
// chain fit to seq's own observed k-mer frequencies: the first k-1 bases
// are kept (canonicalized to upper-case), and every following base is
// drawn from the empirical distribution of bases that followed its
// (k-1)-mer context in the original sequence. tab must hold seq's raw
// k-mer counts (see CountKmers); Markov converts it into per-context
// cumulative sums in place, so a fresh count table is needed per call.
func Markov(seq []byte, k int, tab []uint64, isDNA bool, g *rng.RNG) {
	letterSet := letters(isDNA)

	for i := 0; i < len(tab); i += 5 {
		tab[i+1] += tab[i]
		tab[i+2] += tab[i+1]
		tab[i+3] += tab[i+2]
		tab[i+4] += tab[i+3]
	}

	for i := 0; i < k-1; i++ {
		seq[i] = letterSet[alphabet.Index(seq[i])]
	}

	for i := k - 1; i < len(seq); i++ {
		var previous uint64
		for j := k - 1; j > 0; j-- {
			previous += uint64(alphabet.Index(seq[i-j])) * pow5[j-1]
		}
		row := tab[previous*5 : previous*5+5]
		next := pickNextLetterMarkov(row, g)
		seq[i] = letterSet[next]
	}
}
