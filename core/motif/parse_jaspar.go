package motif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseJASPAR reads a JASPAR position-count matrix file: each motif is a
// ">id name" header followed by exactly 4 rows, one per base, each of the
// form "A  [ 3  0  12  ... ]". Row order may be any permutation of
// A/C/G/T(/U); the base is read off the row's own leading letter, not its
// position. Counts are converted to log-odds using a per-motif site count
// derived from the first column's total, the same way the original tool's
// pcm_to_pwm does.
func ParseJASPAR(r io.Reader, opts *ParseOptions) ([]*Motif, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var motifs []*Motif
	var curName string
	var curLine int
	var rows map[byte][]int
	rowOrder := []byte{}

	flush := func() error {
		if curName == "" && len(rows) == 0 {
			return nil
		}
		if len(rows) != 4 {
			return fmt.Errorf("motif %q: expected 4 rows, found %d", curName, len(rows))
		}
		m, err := jasparRowsToMotif(curName, curLine, rows, opts)
		if err != nil {
			return err
		}
		motifs = append(motifs, m)
		rows = nil
		return nil
	}

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
			curName = strings.TrimSpace(line[1:])
			curLine = lineNum
			rows = make(map[byte][]int, 4)
			rowOrder = rowOrder[:0]
			continue
		}
		if strings.TrimSpace(line) == "" || rows == nil {
			continue
		}
		base, counts, err := parseJasparRow(line, curName)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rows[base] = counts
		rowOrder = append(rowOrder, base)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(motifs) == 0 {
		return nil, fmt.Errorf("failed to detect any motifs in JASPAR file")
	}
	if err := finalizeAll(motifs, opts); err != nil {
		return nil, err
	}
	opts.verbose("found %d JASPAR motif(s)", len(motifs))
	return motifs, nil
}

// parseJasparRow parses one "A  [ 1 2 3 ... ]" row, returning which base
// (as 'A', 'C', 'G', or 'T') it names and its counts.
func parseJasparRow(line, name string) (byte, []int, error) {
	open := strings.IndexByte(line, '[')
	close := strings.IndexByte(line, ']')
	if open < 0 || close < 0 || close < open {
		return 0, nil, fmt.Errorf("motif %q: row missing '[...]'", name)
	}
	var base byte
	for _, c := range line[:open] {
		switch c {
		case 'a', 'A':
			base = 'A'
		case 'c', 'C':
			base = 'C'
		case 'g', 'G':
			base = 'G'
		case 'u', 'U', 't', 'T':
			base = 'T'
		}
	}
	if base == 0 {
		return 0, nil, fmt.Errorf("motif %q: couldn't find A/C/G/T/U in row name", name)
	}
	fields := strings.Fields(line[open+1 : close])
	if len(fields) == 0 {
		return 0, nil, fmt.Errorf("motif %q: empty count row", name)
	}
	counts := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, nil, fmt.Errorf("motif %q: bad count value %q: %w", name, f, err)
		}
		counts[i] = v
	}
	return base, counts, nil
}

func jasparRowsToMotif(name string, lineNum int, rows map[byte][]int, opts *ParseOptions) (*Motif, error) {
	size := -1
	for _, base := range []byte{'A', 'C', 'G', 'T'} {
		counts, ok := rows[base]
		if !ok {
			return nil, fmt.Errorf("motif %q: missing row for base %q", name, string(base))
		}
		if size == -1 {
			size = len(counts)
		} else if size != len(counts) {
			return nil, fmt.Errorf("motif %q: rows have differing numbers of counts", name)
		}
	}
	if size <= 0 {
		return nil, fmt.Errorf("motif %q: has an empty row", name)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("motif %q: is too large (max=%d)", name, MaxSize)
	}

	nsites := rows['A'][0] + rows['C'][0] + rows['G'][0] + rows['T'][0]
	for j := 0; j < size; j++ {
		colSum := rows['A'][j] + rows['C'][j] + rows['G'][j] + rows['T'][j]
		diff := colSum - nsites
		if diff < 0 {
			diff = -diff
		}
		if diff > 1 {
			return nil, fmt.Errorf("motif %q: column sums are not equal", name)
		} else if diff == 1 {
			opts.warn("motif %q: found difference of 1 between column sums", name)
		}
	}

	m := New(name, size)
	m.FileLineNum = lineNum
	for j := 0; j < size; j++ {
		pA := probFromCount(rows['A'][j], nsites, opts.Pseudocount)
		pC := probFromCount(rows['C'][j], nsites, opts.Pseudocount)
		pG := probFromCount(rows['G'][j], nsites, opts.Pseudocount)
		pT := probFromCount(rows['T'][j], nsites, opts.Pseudocount)
		m.SetColumn(j,
			Score(pA, opts.Background[0], float64(nsites), opts.Pseudocount),
			Score(pC, opts.Background[1], float64(nsites), opts.Pseudocount),
			Score(pG, opts.Background[2], float64(nsites), opts.Pseudocount),
			Score(pT, opts.Background[3], float64(nsites), opts.Pseudocount),
		)
	}
	return m, nil
}

func probFromCount(count, nsites int, pseudo float64) float64 {
	return (pseudo/4.0 + float64(count)) / (pseudo + float64(nsites))
}
