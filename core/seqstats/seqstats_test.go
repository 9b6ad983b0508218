package seqstats

import (
	"math"
	"testing"
)

func TestComputeBasicGC(t *testing.T) {
	s := Compute([]byte("ACGT"))
	if s.Size != 4 {
		t.Errorf("Size = %d, want 4", s.Size)
	}
	if s.GCPercent != 50.0 {
		t.Errorf("GCPercent = %g, want 50", s.GCPercent)
	}
	if s.Unknowns != 0 {
		t.Errorf("Unknowns = %d, want 0", s.Unknowns)
	}
}

func TestComputeCountsUnknownsAndExcludesThemFromGC(t *testing.T) {
	s := Compute([]byte("ACGTNN"))
	if s.Size != 6 {
		t.Errorf("Size = %d, want 6", s.Size)
	}
	if s.Unknowns != 2 {
		t.Errorf("Unknowns = %d, want 2", s.Unknowns)
	}
	if s.GCPercent != 50.0 {
		t.Errorf("GCPercent = %g, want 50 (computed over standard bases only)", s.GCPercent)
	}
}

func TestComputeAllUnknownYieldsNaNGC(t *testing.T) {
	s := Compute([]byte("NNNN"))
	if !math.IsNaN(s.GCPercent) {
		t.Errorf("GCPercent = %g, want NaN when there are zero standard bases", s.GCPercent)
	}
}

func TestComputeEmptySequence(t *testing.T) {
	s := Compute(nil)
	if s.Size != 0 || s.Unknowns != 0 {
		t.Errorf("Stats = %+v, want all zero", s)
	}
	if !math.IsNaN(s.GCPercent) {
		t.Errorf("GCPercent = %g, want NaN for an empty sequence", s.GCPercent)
	}
}

func TestComputeIsCaseInsensitive(t *testing.T) {
	upper := Compute([]byte("ACGT"))
	lower := Compute([]byte("acgt"))
	if upper.GCPercent != lower.GCPercent {
		t.Errorf("GCPercent differs by case: %g vs %g", upper.GCPercent, lower.GCPercent)
	}
}

func TestComputeTreatsUAsStandard(t *testing.T) {
	s := Compute([]byte("ACGU"))
	if s.Unknowns != 0 {
		t.Errorf("Unknowns = %d, want 0 (U counts as standard RNA base)", s.Unknowns)
	}
}
