package scanner

import (
	"testing"

	"yamscan-core/motif"
)

// acMotif builds a 2-column motif strongly preferring "AC": position 0
// scores A high and everything else low, position 1 scores C high and
// everything else low.
func acMotif(threshold int32) *motif.Motif {
	m := motif.New("AC", 2)
	m.SetColumn(0, 100, -100, -100, -100)
	m.SetColumn(1, -100, 100, -100, -100)
	m.BuildReverseComplement()
	m.Finalize()
	m.Threshold = threshold
	return m
}

func TestScanForwardOnlyFindsExactMatch(t *testing.T) {
	m := acMotif(150)
	seq := []byte("TTACGGAC")

	var hits []Hit
	err := Scan(m, "seq1", seq, ForwardOnly, false, func(h Hit) error {
		hits = append(hits, h)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2 (positions 3 and 7, 1-based)", len(hits))
	}
	if hits[0].Start != 3 || hits[0].End != 4 || hits[0].Strand != '+' {
		t.Errorf("hits[0] = %+v", hits[0])
	}
	if hits[1].Start != 7 || hits[1].End != 8 {
		t.Errorf("hits[1] = %+v", hits[1])
	}
	if string(hits[0].Match) != "AC" {
		t.Errorf("Match = %q, want AC", hits[0].Match)
	}
}

func TestScanThresholdUnreachableYieldsNoHits(t *testing.T) {
	m := acMotif(motif.ThresholdUnreachable)
	var calls int
	err := Scan(m, "seq1", []byte("ACACACAC"), Both, false, func(Hit) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if calls != 0 {
		t.Fatalf("got %d hits, want 0 for an unreachable threshold", calls)
	}
}

func TestScanSequenceShorterThanMotifYieldsNoHits(t *testing.T) {
	m := acMotif(0)
	var calls int
	err := Scan(m, "seq1", []byte("A"), Both, false, func(Hit) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if calls != 0 {
		t.Fatalf("got %d hits, want 0 for a sequence shorter than the motif", calls)
	}
}

func TestScanPropagatesEmitError(t *testing.T) {
	m := acMotif(150)
	sentinel := errFake{}
	err := Scan(m, "seq1", []byte("AC"), ForwardOnly, false, func(Hit) error {
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("Scan err = %v, want sentinel propagated from emit", err)
	}
}

type errFake struct{}

func (errFake) Error() string { return "fake" }

func TestScanRangeRestrictsToWindowAndTagsBED(t *testing.T) {
	m := acMotif(150)
	seq := []byte("ACTTTTAC") // matches at 0 and 6

	var hits []Hit
	err := ScanRange(m, "chr1", seq, 4, 8, '+', "chr1:5-8", false, func(h Hit) error {
		hits = append(hits, h)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRange: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1 (only the match inside [4,8))", len(hits))
	}
	h := hits[0]
	if !h.InBED || h.BEDChrom != "chr1" || h.BEDStart != 5 || h.BEDEnd != 8 || h.BEDRange != "chr1:5-8" {
		t.Errorf("hit BED tagging = %+v", h)
	}
	if h.Start != 7 || h.End != 8 {
		t.Errorf("hit coords = %+v, want native offset 6 (1-based Start=7)", h)
	}
}

func TestScanRangeStrandDot(t *testing.T) {
	m := acMotif(150)
	seq := []byte("ACAC")
	var strands []byte
	err := ScanRange(m, "chr1", seq, 0, 4, '.', "chr1:1-4", false, func(h Hit) error {
		strands = append(strands, h.Strand)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRange: %v", err)
	}
	if len(strands) == 0 {
		t.Fatal("want at least one hit scanning both strands")
	}
}
