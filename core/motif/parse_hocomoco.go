package motif

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseHOCOMOCO reads a HOCOMOCO position-count matrix file: each motif is
// a ">name" header followed by rows of 4 whitespace-separated counts, one
// row per position. Each row is normalized by its own sum (after adding a
// pseudocount share) before the usual log-odds conversion, matching the
// original tool's add_motif_pcm_column.
func ParseHOCOMOCO(r io.Reader, opts *ParseOptions) ([]*Motif, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var motifs []*Motif
	var cur *Motif
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			cur = New(strings.TrimSpace(line[1:]), 0)
			cur.FileLineNum = lineNum
			motifs = append(motifs, cur)
			continue
		}
		if cur == nil || strings.TrimSpace(line) == "" {
			continue
		}
		counts, err := parseProbRow(line, cur.Name)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		pcmSum := counts[0] + counts[1] + counts[2] + counts[3]
		if pcmSum < 0.99 {
			return nil, fmt.Errorf("line %d: motif %q PCM row adds up to less than 1", lineNum, cur.Name)
		}
		var row [4]float64
		for i, c := range counts {
			row[i] = (opts.Pseudocount/4.0 + c) / pcmSum
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
	opts.verbose("found %d HOCOMOCO motif(s)", len(motifs))
	return motifs, nil
}
