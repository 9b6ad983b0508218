package motif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMEME reads a MEME minimal motif file: zero or more MOTIF blocks,
// each introduced by a "MOTIF <name> ..." line and followed by a
// "letter-probability matrix" header and then rows of whitespace-separated
// probabilities, up to a blank line or a line containing '-' or '*' (the
// header's w= count is not read; its nsites= value, when present, replaces
// opts.NSites for that motif). A "Background letter frequencies"
// section, if present, overrides opts.Background unless opts.UseUserBkg.
func ParseMEME(r io.Reader, opts *ParseOptions) ([]*Motif, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var motifs []*Motif
	var cur *Motif
	lineNum := 0
	expectingBkg := false
	inMatrix := false
	matrixRowsSeen := 0
	alphSeen := false
	strandSeen := false
	motifOpts := opts

	for sc.Scan() {
		lineNum++
		line := sc.Text()

		switch {
		case strings.Contains(line, "ALPHABET= ACDEFGHIKLMNPQRSTVWY"):
			return nil, fmt.Errorf("line %d: detected protein alphabet", lineNum)

		case strings.Contains(line, "ALPHABET"):
			if alphSeen {
				return nil, fmt.Errorf("line %d: detected multiple alphabet definition lines", lineNum)
			}
			if cur != nil {
				return nil, fmt.Errorf("line %d: found alphabet definition line after motifs", lineNum)
			}
			alphSeen = true

		case strings.Contains(line, "strands:"):
			if strandSeen {
				return nil, fmt.Errorf("line %d: detected multiple strand information lines", lineNum)
			}
			if cur != nil {
				return nil, fmt.Errorf("line %d: found strand information line after motifs", lineNum)
			}
			strandSeen = true
			checkMemeStrand(line, lineNum, opts)

		case expectingBkg:
			expectingBkg = false
			if !opts.UseUserBkg {
				bkg, err := parseMemeBkgLine(line)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				opts.Background = Normalize(bkg, opts.Warn)
				opts.verbose("found MEME background values: A=%.3g C=%.3g G=%.3g T=%.3g",
					opts.Background[0], opts.Background[1], opts.Background[2], opts.Background[3])
			}

		case strings.Contains(line, "Background letter frequencies"):
			expectingBkg = true

		case strings.HasPrefix(strings.TrimSpace(line), "MOTIF"):
			cur = New(parseMemeName(line), 0)
			cur.FileLineNum = lineNum
			motifs = append(motifs, cur)
			inMatrix = false

		case strings.Contains(line, "letter-probability matrix"):
			if cur == nil {
				return nil, fmt.Errorf("line %d: letter-probability matrix with no preceding MOTIF line", lineNum)
			}
			inMatrix = true
			matrixRowsSeen = 0
			motifOpts = opts
			fields := strings.Fields(strings.ReplaceAll(line, "=", "= "))
			for j := 0; j+1 < len(fields); j++ {
				if fields[j] != "nsites=" {
					continue
				}
				if n, err := strconv.ParseFloat(fields[j+1], 64); err == nil && n > 0 {
					withSites := *opts
					withSites.NSites = n
					motifOpts = &withSites
				}
			}

		case inMatrix:
			if strings.TrimSpace(line) == "" || strings.ContainsAny(line, "-*") {
				inMatrix = false
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
			appendPPMColumn(cur, row, opts.Background, motifOpts)
			matrixRowsSeen++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(motifs) == 0 {
		return nil, fmt.Errorf("failed to detect any motifs in MEME file")
	}
	if err := finalizeAll(motifs, opts); err != nil {
		return nil, err
	}
	opts.verbose("found %d MEME motif(s)", len(motifs))
	return motifs, nil
}

// checkMemeStrand warns about a MEME "strands:" line's shape without
// changing which strands actually get scanned; the original tool treats
// this line as informational only.
func checkMemeStrand(line string, lineNum int, opts *ParseOptions) {
	fwd := strings.Count(line, "+")
	rev := strings.Count(line, "-")
	switch {
	case (fwd > 1 || rev > 1) || (fwd == 0 && rev == 0):
		opts.warn("line %d: possible malformed strand field", lineNum)
	case opts.ScanRC && fwd > 0 && rev == 0:
		opts.warn("line %d: MEME motifs are only for the forward strand", lineNum)
	case fwd == 0 && rev > 0:
		opts.warn("line %d: MEME motifs are only for the reverse strand", lineNum)
	case !opts.ScanRC && fwd > 0 && rev > 0:
		opts.warn("line %d: MEME motifs are for both strands", lineNum)
	}
}

// parseMemeName extracts the name token following "MOTIF" on a MEME motif
// header line. MEME allows a second, alternate identifier after the name;
// only the first is kept, matching the original tool.
func parseMemeName(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// parseMemeBkgLine parses a MEME "A 0.29 C 0.21 G 0.21 T 0.29" background
// line into A/C/G/T order.
func parseMemeBkgLine(line string) (Background, error) {
	fields := strings.Fields(line)
	var b Background
	found := [4]bool{}
	letterIdx := map[string]int{"A": 0, "C": 1, "G": 2, "T": 3, "U": 3}
	i := 0
	for i < len(fields) {
		idx, ok := letterIdx[strings.ToUpper(fields[i])]
		if !ok {
			return b, fmt.Errorf("unexpected token %q in MEME background line", fields[i])
		}
		if i+1 >= len(fields) {
			return b, fmt.Errorf("missing value after %q in MEME background line", fields[i])
		}
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return b, fmt.Errorf("bad background value %q: %w", fields[i+1], err)
		}
		b[idx] = v
		found[idx] = true
		i += 2
	}
	for i, ok := range found {
		if !ok {
			return b, fmt.Errorf("too few background values found (need 4, missing index %d)", i)
		}
	}
	return b, nil
}
