package shuffle

import "yamscan-core/rng"

// FisherYates permutes seq uniformly at random in place (yamshuf's k=1
// mode: every base's own composition is trivially preserved by any
// permutation, so there is nothing to fix up afterward).
func FisherYates(seq []byte, g *rng.RNG) {
	for i := 0; i < len(seq)-1; i++ {
		j := i + g.IntN(len(seq)-i)
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// Linear shuffles seq by swapping consecutive, non-overlapping blocks of k
// bases with a randomly chosen later block, also aligned to a multiple of
// k from the current position. This preserves the multiset of k-mers at
// block boundaries only (an approximation to true k-mer preservation), the
// same tradeoff yamshuf's "-k <k> -m linear" mode makes in exchange for a
// single linear pass instead of the Markov/Euler machinery.
func Linear(seq []byte, k int, g *rng.RNG) {
	size := len(seq)
	for i := 0; i <= size-2*k; i += k {
		span := size - 2*k + 1 - i
		r := g.IntN(span)
		j := i + k + r - r%k
		swapBlock(seq, i, j, k)
	}
}

func swapBlock(seq []byte, i, j, k int) {
	for a := 0; a < k; a++ {
		seq[i+a], seq[j+a] = seq[j+a], seq[i+a]
	}
}
