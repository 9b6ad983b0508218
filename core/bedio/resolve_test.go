package bedio

import "testing"

type fakeSizer map[string]int64

func (f fakeSizer) SizeOf(name string) (int64, bool) {
	v, ok := f[name]
	return v, ok
}

func indexOfFor(sizer fakeSizer) func(string) (int, bool) {
	names := make([]string, 0, len(sizer))
	for n := range sizer {
		names = append(names, n)
	}
	return func(name string) (int, bool) {
		for i, n := range names {
			if n == name {
				return i, true
			}
		}
		return 0, false
	}
}

func TestResolveClampsOutOfBoundsEnd(t *testing.T) {
	sizer := fakeSizer{"chr1": 100}
	regions := []Region{{SeqName: "chr1", Start: 90, End: 150}}
	var warned string
	resolved, err := Resolve(regions, sizer, indexOfFor(sizer), func(s string) { warned = s })
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved[0].End != 100 {
		t.Errorf("End = %d, want clamped to 100", resolved[0].End)
	}
	if warned == "" {
		t.Error("want a warning when trimming an out-of-bounds range")
	}
}

func TestResolveUnknownSeqNameIsError(t *testing.T) {
	sizer := fakeSizer{"chr1": 100}
	regions := []Region{{SeqName: "chrX", Start: 0, End: 10}}
	if _, err := Resolve(regions, sizer, indexOfFor(sizer), nil); err == nil {
		t.Fatal("want error for a bed region naming an unknown sequence")
	}
}

func TestResolveOutOfBoundsStartIsError(t *testing.T) {
	sizer := fakeSizer{"chr1": 100}
	regions := []Region{{SeqName: "chr1", Start: 100, End: 110}}
	if _, err := Resolve(regions, sizer, indexOfFor(sizer), nil); err == nil {
		t.Fatal("want error when start is beyond the sequence length")
	}
}

func TestResolveWithinBoundsNoWarning(t *testing.T) {
	sizer := fakeSizer{"chr1": 100}
	regions := []Region{{SeqName: "chr1", Start: 0, End: 50}}
	called := false
	resolved, err := Resolve(regions, sizer, indexOfFor(sizer), func(string) { called = true })
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if called {
		t.Error("unexpected warning for an in-bounds range")
	}
	if resolved[0].End != 50 {
		t.Errorf("End = %d, want unchanged 50", resolved[0].End)
	}
}

func TestSummarizeCountsBasesAndDistinctSequences(t *testing.T) {
	resolved := []Resolved{
		{Region: Region{Start: 0, End: 10}, SeqIndex: 0},
		{Region: Region{Start: 10, End: 25}, SeqIndex: 0},
		{Region: Region{Start: 0, End: 5}, SeqIndex: 1},
	}
	s := Summarize(resolved)
	if s.Regions != 3 {
		t.Errorf("Regions = %d, want 3", s.Regions)
	}
	if s.Bases != 30 {
		t.Errorf("Bases = %d, want 30", s.Bases)
	}
	if s.Sequences != 2 {
		t.Errorf("Sequences = %d, want 2", s.Sequences)
	}
}
