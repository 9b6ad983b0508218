// Package motif holds the Motif type and the PWM builder: conversion of a
// parsed probability matrix into an integer log-odds position weight matrix,
// plus its reverse-complement counterpart. Parsing of the on-disk motif
// formats (MEME/HOMER/JASPAR/HOCOMOCO) lives alongside it in this package;
// the exact discrete score distribution (PDF/CDF/threshold) is computed by
// the sibling core/dist package so the DP that is this tool's algorithmic
// heart (spec's score-distribution engine) stays independently testable.
package motif

import (
	"math"

	"yamscan-core/alphabet"
)

// AmbiguityScore is the score pinned into a PWM's non-standard-base row.
// Fifty positions' worth of this sentinel still sits comfortably above the
// signed-32-bit floor, which is what lets the scan loop use one branch-free
// sum instead of special-casing non-ACGTU bases.
const AmbiguityScore int32 = -10_000_000

// MaxSize is the largest number of positions a motif may have.
const MaxSize = 50

// MaxNameLen is the largest a motif name may be, matching the original
// tool's MAX_NAME_SIZE.
const MaxNameLen = 256

// MaxCDFSize is the largest score-distribution table the engine will build;
// requesting larger is a fatal, not a silently-truncated, error.
const MaxCDFSize = 2_097_152

// MinBackground is the smallest a single background probability may be
// after clamping, which bounds how large a CDF a pathological background
// could otherwise demand.
const MinBackground = 0.001

// PWMIntMultiplier is applied to the real-valued log2 odds before integer
// truncation, matching the original tool's fixed-point score resolution.
const PWMIntMultiplier = 1000.0

// Threshold value meaning "this motif cannot reach the requested p-value".
const ThresholdUnreachable = math.MaxInt32

// Motif is a named, L-position scoring matrix plus its derived score
// distribution. PWM/PWMRC are indexed [position][alphabet index 0..4]; the
// ambiguity row (index 4) is pinned to AmbiguityScore at construction and is
// never touched again.
type Motif struct {
	Name        string
	Size        int
	PWM         [][alphabet.NumBases]int32
	PWMRC       [][alphabet.NumBases]int32
	Min, Max    int32 // smallest / largest per-position ACGT score
	MinScore    int32 // sum of per-position minimums
	MaxScore    int32 // sum of per-position maximums
	CDFOffset   int64 // Min * Size
	CDFMax      int32 // Max - Min
	CDFSize     int64 // Size*CDFMax + 1
	CDF         []float64
	Threshold   int32 // native-score-axis threshold; ThresholdUnreachable if out of reach
	NonScoring  bool
	FileLineNum int
	IsConsensus bool
}

// New allocates a Motif of the given size with both PWM rows pre-seeded:
// the ambiguity row pinned to AmbiguityScore everywhere, all else zero.
func New(name string, size int) *Motif {
	m := &Motif{
		Name:  name,
		Size:  size,
		PWM:   make([][alphabet.NumBases]int32, size),
		PWMRC: make([][alphabet.NumBases]int32, size),
	}
	for i := 0; i < size; i++ {
		m.PWM[i][alphabet.NonStandard] = AmbiguityScore
		m.PWMRC[i][alphabet.NonStandard] = AmbiguityScore
	}
	return m
}

// Score computes the ×1000 integer log-odds score for one letter at one
// column, given its probability under the motif and the background.
//
//	score = floor(1000 * log2((p*nsites + pseudo/4) / ((nsites+pseudo)*bkg)))
func Score(p, bkg float64, nsites, pseudo float64) int32 {
	num := p*nsites + pseudo/4.0
	den := (nsites + pseudo) * bkg
	v := PWMIntMultiplier * math.Log2(num/den)
	return int32(math.Floor(v))
}

// SetColumn stores the forward scores for one position (A, C, G, T order).
// It does not touch the reverse-complement matrix; BuildReverseComplement
// fills that from the finished forward matrix.
func (m *Motif) SetColumn(pos int, a, c, g, t int32) {
	m.PWM[pos][0] = a
	m.PWM[pos][1] = c
	m.PWM[pos][2] = g
	m.PWM[pos][3] = t
}

// BuildReverseComplement fills PWMRC from PWM: position i of the reverse
// complement uses the complementary base scores of position (Size-1-i) of
// the forward matrix. A complements T, C complements G.
func (m *Motif) BuildReverseComplement() {
	n := m.Size
	for i := 0; i < n; i++ {
		src := m.PWM[n-1-i]
		m.PWMRC[i][0] = src[3] // A <- T
		m.PWMRC[i][1] = src[2] // C <- G
		m.PWMRC[i][2] = src[1] // G <- C
		m.PWMRC[i][3] = src[0] // T <- A
	}
}

// Finalize computes Min/Max/MinScore/MaxScore/CDFOffset/CDFMax/CDFSize from
// the forward PWM. It must be called once the full matrix (and reverse
// complement) has been populated, before the score distribution is built.
func (m *Motif) Finalize() {
	var minScore, maxScore int32
	min, max := m.PWM[0][0], m.PWM[0][0]
	for i := 0; i < m.Size; i++ {
		rowMin, rowMax := m.PWM[i][0], m.PWM[i][0]
		for b := 1; b < 4; b++ {
			v := m.PWM[i][b]
			if v < rowMin {
				rowMin = v
			}
			if v > rowMax {
				rowMax = v
			}
		}
		minScore += rowMin
		maxScore += rowMax
		if rowMin < min {
			min = rowMin
		}
		if rowMax > max {
			max = rowMax
		}
	}
	m.Min, m.Max = min, max
	m.MinScore, m.MaxScore = minScore, maxScore
	m.CDFOffset = int64(min) * int64(m.Size)
	m.CDFMax = max - min
	m.CDFSize = int64(m.Size)*int64(m.CDFMax) + 1
}
