package motif

import (
	"fmt"

	"yamscan-core/alphabet"
)

// NewConsensusMotif builds a single motif directly from an IUPAC consensus
// string (yamscan's "-1 <consensus>" mode) instead of a motif file. Each
// letter's ambiguity code is expanded to an A/C/G/T probability row via
// alphabet.ConsensusProbs before the usual log-odds conversion, so "N"
// scores as background and "A" scores as a fully-informative column.
func NewConsensusMotif(consensus string, opts *ParseOptions) (*Motif, error) {
	if len(consensus) == 0 {
		return nil, fmt.Errorf("consensus sequence is empty")
	}
	if len(consensus) > MaxSize {
		return nil, fmt.Errorf("consensus sequence is too large (%d>max=%d)", len(consensus), MaxSize)
	}
	m := New(consensus, len(consensus))
	m.IsConsensus = true
	for pos := 0; pos < len(consensus); pos++ {
		probs, ok := alphabet.ConsensusProbs(consensus[pos])
		if !ok {
			return nil, fmt.Errorf("unknown letter in consensus (%c)", consensus[pos])
		}
		m.SetColumn(pos,
			Score(probs[0], opts.Background[0], opts.NSites, opts.Pseudocount),
			Score(probs[1], opts.Background[1], opts.NSites, opts.Pseudocount),
			Score(probs[2], opts.Background[2], opts.NSites, opts.Pseudocount),
			Score(probs[3], opts.Background[3], opts.NSites, opts.Pseudocount),
		)
	}
	m.BuildReverseComplement()
	m.Finalize()
	return m, nil
}
