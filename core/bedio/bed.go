// Package bedio parses BED region files and resolves them against a loaded
// sequence set, the way yamscan's "-x" region-restricted scan mode does.
// It is hand-rolled rather than built on biogo/biogo's io/featio family:
// the pack's biogo grounding (other_examples/biogo-examples__pwmscan.go)
// only exercises io/featio/gff, and this tool's BED dialect needs the
// looser 3-to-6-column layout, UCSC track/browser/comment skipping, and
// exact field-level error messages the original tool produces, none of
// which map onto a feature type built for GFF.
package bedio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Region is one resolved BED interval: Start/End are 0-based, half-open,
// matching BED's own convention and this tool's internal range slicing.
type Region struct {
	SeqName string
	Start   int64
	End     int64
	Strand  byte // '+', '-', or '.'
	Name    string
	Line    int
}

// ReadOptions controls name trimming, matching the scanner's own name
// trimming (on by default, turned off by -r).
type ReadOptions struct {
	TrimNames bool
}

// maxNameLen mirrors the original tool's SEQ_NAME_MAX_CHAR, applied to both
// a BED record's chrom field and its optional range name.
const maxNameLen = 512

// Read parses a BED stream into a slice of Regions, in file order. Empty
// lines, '#'-prefixed comments, and UCSC "track"/"browser" lines are
// skipped. A record needs at least 3 tab/space-separated fields
// (chrom, start, end); a 4th column is the input name (defaults to "."),
// a 6th column is the strand (defaults to '.').
func Read(r io.Reader, opts ReadOptions) ([]Region, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var regions []Region
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "#"):
			continue
		case strings.HasPrefix(trimmed, "browser"):
			continue
		case strings.HasPrefix(trimmed, "track"):
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: bed record has fewer than 3 fields (found %d)", lineNum, len(fields))
		}

		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad start value %q: %w", lineNum, fields[1], err)
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad end value %q: %w", lineNum, fields[2], err)
		}
		if start >= end {
			return nil, fmt.Errorf("line %d: start (%d) >= end (%d)", lineNum, start, end)
		}

		name := "."
		if len(fields) >= 4 {
			name = fields[3]
			if opts.TrimNames {
				name = trimName(name)
			}
			if len(name) > maxNameLen {
				return nil, fmt.Errorf("line %d: range name is too large (%d>%d)", lineNum, len(name), maxNameLen)
			}
		}

		strand := byte('.')
		if len(fields) >= 6 {
			s := fields[5]
			if len(s) != 1 || (s[0] != '+' && s[0] != '-' && s[0] != '.') {
				return nil, fmt.Errorf("line %d: strand field must be one of +/-/. (found %q)", lineNum, s)
			}
			strand = s[0]
		}

		seqName := fields[0]
		if opts.TrimNames {
			seqName = trimName(seqName)
		}
		if len(seqName) > maxNameLen {
			return nil, fmt.Errorf("line %d: sequence name is too large (%d>%d)", lineNum, len(seqName), maxNameLen)
		}

		regions = append(regions, Region{
			SeqName: seqName,
			Start:   start,
			End:     end,
			Strand:  strand,
			Name:    name,
			Line:    lineNum,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("failed to read any records in bed file")
	}
	return regions, nil
}

func trimName(name string) string {
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		return name[:i]
	}
	return name
}
