// Package ctx holds the indexed sequence set yamscan's app.RunContext
// builds once from the loaded, deduplicated FASTA records and uses whether
// it ends up scanning motifs or just printing sequence stats, including as
// the size-lookup adapter bedio.Resolve needs. Resolved BED regions and the
// background stay with the caller; yamshuf does not use this package.
package ctx

import "yamscan-core/seqio"

// SeqSet indexes a loaded FASTA file by name for both the scanner's own
// lookups and bedio.Resolve's SeqSizer requirement.
type SeqSet struct {
	Records []seqio.Record
	byName  map[string]int
}

// NewSeqSet indexes records by their ID field as given (the caller sets it
// to the trimmed or full name beforehand), matching the name every hit and
// BED lookup is reported under.
func NewSeqSet(records []seqio.Record) *SeqSet {
	s := &SeqSet{Records: records, byName: make(map[string]int, len(records))}
	for i, r := range records {
		s.byName[r.ID] = i
	}
	return s
}

// IndexOf returns the position of the sequence named name, and whether it
// was found.
func (s *SeqSet) IndexOf(name string) (int, bool) {
	i, ok := s.byName[name]
	return i, ok
}

// SizeOf implements bedio.SeqSizer.
func (s *SeqSet) SizeOf(name string) (int64, bool) {
	i, ok := s.byName[name]
	if !ok {
		return 0, false
	}
	return int64(len(s.Records[i].Seq)), true
}
