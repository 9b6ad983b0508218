// Package scanner slides a motif's PWM across a sequence (optionally
// restricted to a BED sub-range) and reports every window whose score
// exceeds the motif's threshold, forward and/or reverse-complement.
package scanner

import (
	"yamscan-core/alphabet"
	"yamscan-core/dist"
	"yamscan-core/motif"
)

// Orientation selects which strand(s) a scan reports.
type Orientation byte

const (
	// Both scores forward and reverse-complement in one pass (the default,
	// fused for cache reuse as spec's "dual-orientation" scan).
	Both Orientation = iota
	ForwardOnly
	ReverseOnly
)

// Hit is one reported window. Start/End are 1-based inclusive, matching the
// scanner result stream's column contract.
type Hit struct {
	SeqName string
	Start   int64
	End     int64
	Strand  byte // '+' or '-'
	Motif   string
	PValue  float64
	Score   int32
	Percent float64
	Match   []byte

	// Populated only when the scan is BED-restricted.
	InBED      bool
	BEDChrom   string
	BEDStart   int64
	BEDEnd     int64
	BEDStrand  byte
	BEDRange   string
}

// scoreWindow sums the forward PWM over seq[offset:offset+L] using table to
// map bases to PWM row indices.
func scoreWindow(m *motif.Motif, seq []byte, offset int, table *[256]byte) int32 {
	var score int32
	for i := 0; i < m.Size; i++ {
		score += m.PWM[i][table[seq[offset+i]]]
	}
	return score
}

// scoreWindowRC sums the reverse-complement PWM over the same forward
// window. This mirrors the original tool's score_subseq_rev: it does not
// reverse-complement the substring itself, it scores the forward bytes
// against the mirrored matrix, which by construction is equivalent to
// scoring the true reverse complement against the forward PWM (spec
// testable property 7).
func scoreWindowRC(m *motif.Motif, seq []byte, offset int, table *[256]byte) int32 {
	var score int32
	for i := 0; i < m.Size; i++ {
		score += m.PWMRC[i][table[seq[offset+i]]]
	}
	return score
}

func percent(score int32, maxScore int32) float64 {
	if maxScore == 0 {
		return 0
	}
	return 100.0 * float64(score) / float64(maxScore)
}

// Scan slides m across the full sequence seq (named seqName) and invokes
// emit for every window whose score beats the threshold, in ascending
// offset order. A motif whose threshold is unreachable, or a sequence
// shorter than the motif, yields zero hits without error.
func Scan(m *motif.Motif, seqName string, seq []byte, orient Orientation, mask bool, emit func(Hit) error) error {
	if len(seq) < m.Size || m.Threshold == motif.ThresholdUnreachable {
		return nil
	}
	table := alphabet.Table(mask)
	threshold := m.Threshold - 1
	last := len(seq) - m.Size

	switch orient {
	case Both:
		for i := 0; i <= last; i++ {
			fwd := scoreWindow(m, seq, i, table)
			rc := scoreWindowRC(m, seq, i, table)
			if fwd > threshold {
				if err := emit(makeHit(m, seqName, seq, i, '+', fwd)); err != nil {
					return err
				}
			}
			if rc > threshold {
				if err := emit(makeHit(m, seqName, seq, i, '-', rc)); err != nil {
					return err
				}
			}
		}
	case ForwardOnly:
		for i := 0; i <= last; i++ {
			fwd := scoreWindow(m, seq, i, table)
			if fwd > threshold {
				if err := emit(makeHit(m, seqName, seq, i, '+', fwd)); err != nil {
					return err
				}
			}
		}
	case ReverseOnly:
		for i := 0; i <= last; i++ {
			rc := scoreWindowRC(m, seq, i, table)
			if rc > threshold {
				if err := emit(makeHit(m, seqName, seq, i, '-', rc)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ScanRange restricts the scan to [start, end) (0-based, half-open) of seq,
// as produced by BED-region resolution, and tags each hit with the BED
// metadata the result stream prefixes onto BED-mode rows.
func ScanRange(m *motif.Motif, chrom string, seq []byte, start, end int, strand byte, rangeName string, mask bool, emit func(Hit) error) error {
	if end-start < m.Size || m.Threshold == motif.ThresholdUnreachable {
		return nil
	}
	table := alphabet.Table(mask)
	threshold := m.Threshold - 1
	last := end - m.Size

	tagBED := func(h Hit) Hit {
		h.InBED = true
		h.BEDChrom = chrom
		h.BEDStart = int64(start) + 1
		h.BEDEnd = int64(end)
		h.BEDStrand = strand
		h.BEDRange = rangeName
		return h
	}

	switch strand {
	case '.':
		for i := start; i <= last; i++ {
			fwd := scoreWindow(m, seq, i, table)
			rc := scoreWindowRC(m, seq, i, table)
			if fwd > threshold {
				if err := emit(tagBED(makeHit(m, chrom, seq, i, '+', fwd))); err != nil {
					return err
				}
			}
			if rc > threshold {
				if err := emit(tagBED(makeHit(m, chrom, seq, i, '-', rc))); err != nil {
					return err
				}
			}
		}
	case '+':
		for i := start; i <= last; i++ {
			fwd := scoreWindow(m, seq, i, table)
			if fwd > threshold {
				if err := emit(tagBED(makeHit(m, chrom, seq, i, '+', fwd))); err != nil {
					return err
				}
			}
		}
	case '-':
		for i := start; i <= last; i++ {
			rc := scoreWindowRC(m, seq, i, table)
			if rc > threshold {
				if err := emit(tagBED(makeHit(m, chrom, seq, i, '-', rc))); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func makeHit(m *motif.Motif, seqName string, seq []byte, offset int, strand byte, score int32) Hit {
	return Hit{
		SeqName: seqName,
		Start:   int64(offset) + 1,
		End:     int64(offset + m.Size),
		Strand:  strand,
		Motif:   m.Name,
		PValue:  dist.ScoreToPvalue(m, score),
		Score:   score,
		Percent: percent(score, m.MaxScore),
		Match:   seq[offset : offset+m.Size],
	}
}
