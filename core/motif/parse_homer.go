package motif

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseHOMER reads a HOMER motif file: each motif is a ">consensus\tname\t..."
// header followed by rows of 4 whitespace-separated probabilities, one row
// per position, until the next header or EOF.
func ParseHOMER(r io.Reader, opts *ParseOptions) ([]*Motif, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var motifs []*Motif
	var cur *Motif
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			cur = New(parseHomerName(line), 0)
			cur.FileLineNum = lineNum
			motifs = append(motifs, cur)
			continue
		}
		if cur == nil || strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseProbRow(line, cur.Name)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		row, err = normalizeProbRow(row, cur.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if cur.Size >= MaxSize {
			return nil, fmt.Errorf("line %d: motif %q is too large (max=%d)", lineNum, cur.Name, MaxSize)
		}
		appendPPMColumn(cur, row, opts.Background, opts)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := finalizeAll(motifs, opts); err != nil {
		return nil, err
	}
	opts.verbose("found %d HOMER motif(s)", len(motifs))
	return motifs, nil
}

// parseHomerName takes the second tab-separated field of a HOMER header
// line as the motif name, matching the original parser's behavior; a
// missing second field yields an empty name rather than an error.
func parseHomerName(line string) string {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return ""
	}
	return strings.TrimSpace(fields[1])
}
