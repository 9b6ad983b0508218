package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. ID is the header's first
// whitespace-delimited token; Comment is everything after it, unparsed.
type Record struct {
	ID      string
	Comment string
	Seq     []byte
	Line    int // header's line number
}

// FullName returns the name a record should be reported or written back
// out under: just ID when trimNames is set or there was no comment, or
// "ID Comment" otherwise, mirroring the original tool's add_seq_name.
func (r Record) FullName(trimNames bool) string {
	if trimNames || r.Comment == "" {
		return r.ID
	}
	return r.ID + " " + r.Comment
}

// ReadAll parses every record out of r's FASTA stream. Lines are
// concatenated per record with no internal whitespace assumptions beyond
// trimming trailing carriage returns.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<30)

	var records []Record
	var cur *Record
	var seq bytes.Buffer
	lineNum := 0

	flush := func() {
		if cur == nil {
			return
		}
		cur.Seq = append([]byte(nil), seq.Bytes()...)
		records = append(records, *cur)
		seq.Reset()
	}

	for sc.Scan() {
		lineNum++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id, comment := splitHeader(line[1:])
			cur = &Record{ID: id, Comment: comment, Line: lineNum}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("line %d: sequence data before any header", lineNum)
		}
		seq.Write(bytes.TrimRight(line, "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to read any records from fasta input")
	}
	return records, nil
}

func splitHeader(hdr []byte) (id, comment string) {
	hdr = bytes.TrimRight(hdr, "\r")
	i := bytes.IndexAny(hdr, " \t")
	if i < 0 {
		return string(hdr), ""
	}
	return string(hdr[:i]), string(bytes.TrimLeft(hdr[i+1:], " \t"))
}
