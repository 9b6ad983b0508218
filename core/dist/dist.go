// Package dist computes the exact discrete null-hypothesis score
// distribution of a motif by iterated convolution (PDF), integrates it to
// an upper-tail survival function (CDF), and derives the integer score
// threshold corresponding to a target p-value. This is the algorithmic
// heart of the scanner: quantizing scores to integers turns an otherwise
// continuous convolution into a single 1-D dynamic-programming array of
// size L*(max-min)+1, which is what makes exact (not sampled) p-values
// tractable at GB scale.
package dist

import (
	"fmt"
	"math"

	"yamscan-core/motif"
)

// Scratch is the pair of reusable buffers one worker goroutine owns across
// every motif it scores. It only ever grows (realloc-like semantics): the
// largest CDF any motif on this worker needs determines its final size, and
// it is never freed mid-run, matching the spec's "never freed between
// motifs" per-worker scratch.
type Scratch struct {
	pdf []float64
	tmp []float64
}

func (s *Scratch) ensure(n int) {
	if cap(s.pdf) < n {
		grown := make([]float64, n)
		s.pdf = grown
	} else {
		s.pdf = s.pdf[:n]
	}
	if cap(s.tmp) < n {
		s.tmp = make([]float64, n)
	} else {
		s.tmp = s.tmp[:n]
	}
}

// Build fills m.CDF with the motif's exact upper-tail score distribution
// under background bkg (order A, C, G, T), reusing scratch's buffers.
func Build(m *motif.Motif, bkg [4]float64, scratch *Scratch) error {
	if m.CDFSize > motif.MaxCDFSize {
		return fmt.Errorf("motif %q: CDF size %d exceeds limit %d (background value below %v?)",
			m.Name, m.CDFSize, motif.MaxCDFSize, motif.MinBackground)
	}
	n := int(m.CDFSize)
	scratch.ensure(n)
	pdf := scratch.pdf
	tmp := scratch.tmp

	for i := range pdf {
		pdf[i] = 0
	}
	pdf[0] = 1.0

	cdfMax := int(m.CDFMax)
	for i := 0; i < m.Size; i++ {
		maxStep := i * cdfMax
		copy(tmp[:maxStep+1], pdf[:maxStep+1])
		for k := 0; k <= maxStep+cdfMax; k++ {
			pdf[k] = 0
		}
		for b := 0; b < 4; b++ {
			shift := int(m.PWM[i][b] - m.Min)
			for k := 0; k <= maxStep; k++ {
				pdf[k+shift] += tmp[k] * bkg[b]
			}
		}
	}

	var sum float64
	for _, v := range pdf {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-4 {
		for i := range pdf {
			pdf[i] /= sum
		}
	}

	// Reverse cumulative sum turns the PDF into the upper-tail survival
	// function: cdf[k] = P(shifted total score >= k).
	cdf := make([]float64, n)
	var running float64
	for i := n - 1; i >= 0; i-- {
		running += pdf[i]
		cdf[i] = running
	}
	m.CDF = cdf
	return nil
}

// ThresholdOptions carries the scan modes that override the computed
// threshold (spec's -0 and single-consensus-motif modes).
type ThresholdOptions struct {
	ForceZero   bool
	IsConsensus bool
}

// SetThreshold derives m.Threshold from m.CDF for the given p-value. If even
// the motif's maximum score cannot reach pvalue (within the 1.0001 slack the
// original tool allows for floating point noise), the motif is marked
// NonScoring and its threshold set to ThresholdUnreachable.
func SetThreshold(m *motif.Motif, pvalue float64, opts ThresholdOptions) {
	thresholdIdx := len(m.CDF)
	for i, v := range m.CDF {
		if v < pvalue {
			thresholdIdx = i
			break
		}
	}
	m.Threshold = int32(thresholdIdx) + m.Min*int32(m.Size)

	minPvalue := scoreToPvalue(m, m.MaxScore)
	if minPvalue/pvalue > 1.0001 {
		m.Threshold = motif.ThresholdUnreachable
		m.NonScoring = true
	} else {
		m.NonScoring = false
	}

	if opts.ForceZero {
		m.Threshold = 0
		m.NonScoring = false
	} else if opts.IsConsensus {
		m.Threshold = m.MaxScore
		m.NonScoring = false
	}
}

// scoreToPvalue maps a native-axis score to its p-value via the CDF.
func scoreToPvalue(m *motif.Motif, score int32) float64 {
	idx := int64(score) - m.CDFOffset
	if idx < 0 || idx >= int64(len(m.CDF)) {
		return 0
	}
	return m.CDF[idx]
}

// ScoreToPvalue exposes scoreToPvalue for the scanner, which reports it per
// hit (the scan loop's score2pval).
func ScoreToPvalue(m *motif.Motif, score int32) float64 { return scoreToPvalue(m, score) }
