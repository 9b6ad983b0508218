package bedio

import "fmt"

// SeqSizer looks up a sequence's length by name, matching the input
// sequence set the scanner has already loaded.
type SeqSizer interface {
	SizeOf(name string) (int64, bool)
}

// Resolved is a Region with its sequence name checked against the loaded
// sequences and its End clamped to that sequence's length.
type Resolved struct {
	Region
	SeqIndex int
}

// Resolve checks every region's SeqName against sizer, fails fatally (an
// error) on an unknown name or an out-of-bounds Start, and trims an
// out-of-bounds End down to the sequence length with a warning.
func Resolve(regions []Region, sizer SeqSizer, indexOf func(name string) (int, bool), warn func(string)) ([]Resolved, error) {
	out := make([]Resolved, 0, len(regions))
	for i, r := range regions {
		size, ok := sizer.SizeOf(r.SeqName)
		if !ok {
			return nil, fmt.Errorf("range #%d in bed file has a sequence name not in input sequences (%s)", i+1, r.SeqName)
		}
		if r.Start+1 > size {
			return nil, fmt.Errorf("range #%d in bed file is out of bounds on sequence %s (range %d-%d, sequence size %d)",
				i+1, r.SeqName, r.Start+1, r.End, size)
		}
		if r.End > size {
			if warn != nil {
				warn(fmt.Sprintf("trimming range #%d in bed file on sequence %s (range %d-%d, sequence size %d)",
					i+1, r.SeqName, r.Start+1, r.End, size))
			}
			r.End = size
		}
		idx, _ := indexOf(r.SeqName)
		out = append(out, Resolved{Region: r, SeqIndex: idx})
	}
	return out, nil
}

// Stats summarizes a resolved region set the way the scanner's -w report
// does: total regions, bases covered, and distinct sequences touched.
type Stats struct {
	Regions   int
	Bases     int64
	Sequences int
}

// Summarize computes Stats over a resolved region set.
func Summarize(regions []Resolved) Stats {
	seen := make(map[int]struct{})
	var s Stats
	s.Regions = len(regions)
	for _, r := range regions {
		s.Bases += r.End - r.Start
		seen[r.SeqIndex] = struct{}{}
	}
	s.Sequences = len(seen)
	return s
}
