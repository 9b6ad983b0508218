package motif

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseOptions configures how a motif file is turned into []*Motif. NSites
// and Pseudocount feed the log-odds formula; Background is the null model
// every probability is scored against, and may be overridden in place by a
// MEME file's own "Background letter frequencies" section unless
// UseUserBkg is set. Warn and Verbose, when non-nil, receive the same
// diagnostic messages the original tool prints under -w/-v.
type ParseOptions struct {
	Background  Background
	UseUserBkg  bool
	NSites      float64
	Pseudocount float64
	TrimNames   bool
	// ScanRC reports whether the reverse-complement strand will also be
	// scanned, which MEME's "strands:" line warnings key off of.
	ScanRC  bool
	Warn    func(string)
	Verbose func(string)
}

func (o *ParseOptions) warn(format string, args ...any) {
	if o.Warn != nil {
		o.Warn(fmt.Sprintf(format, args...))
	}
}

func (o *ParseOptions) verbose(format string, args ...any) {
	if o.Verbose != nil {
		o.Verbose(fmt.Sprintf(format, args...))
	}
}

// parseProbRow splits a whitespace-separated row of 4 numeric fields,
// erroring if there are not exactly 4.
func parseProbRow(line string, name string) ([4]float64, error) {
	fields := strings.Fields(line)
	var row [4]float64
	if len(fields) < 4 {
		return row, fmt.Errorf("motif %q: too few columns (need 4, got %d)", name, len(fields))
	}
	if len(fields) > 4 {
		return row, fmt.Errorf("motif %q: too many columns (need 4, got %d)", name, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return row, fmt.Errorf("motif %q: bad probability value %q: %w", name, f, err)
		}
		row[i] = v
	}
	return row, nil
}

// normalizeProbRow enforces the same tolerance the original tool does: a
// row more than 10% off 1.0 is a hard error, one more than 2% off is
// rescaled with a warning, and anything closer is left untouched.
func normalizeProbRow(row [4]float64, name string, o *ParseOptions) ([4]float64, error) {
	sum := row[0] + row[1] + row[2] + row[3]
	if math.Abs(sum-1.0) > 0.1 {
		return row, fmt.Errorf("motif %q: row does not add up to 1 (sum=%.3g)", name, sum)
	}
	if math.Abs(sum-1.0) > 0.02 {
		o.warn("motif %q: row does not add up to 1, adjusting (sum=%.3g)", name, sum)
		for i := range row {
			row[i] /= sum
		}
	}
	return row, nil
}

// appendPPMColumn scores one letter-probability-matrix row directly (MEME,
// HOMER) and appends it as the motif's next column.
func appendPPMColumn(m *Motif, row [4]float64, bkg Background, o *ParseOptions) {
	pos := m.Size
	m.Size++
	m.PWM = append(m.PWM, [5]int32{})
	m.PWMRC = append(m.PWMRC, [5]int32{})
	m.PWM[pos][4] = AmbiguityScore
	m.PWMRC[pos][4] = AmbiguityScore
	m.SetColumn(pos,
		Score(row[0], bkg[0], o.NSites, o.Pseudocount),
		Score(row[1], bkg[1], o.NSites, o.Pseudocount),
		Score(row[2], bkg[2], o.NSites, o.Pseudocount),
		Score(row[3], bkg[3], o.NSites, o.Pseudocount),
	)
}

func trimName(name string) string {
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		return name[:i]
	}
	return name
}

func finalizeAll(motifs []*Motif, o *ParseOptions) error {
	for _, m := range motifs {
		m.BuildReverseComplement()
		m.Finalize()
		if o.TrimNames {
			m.Name = trimName(m.Name)
		}
		if len(m.Name) > MaxNameLen {
			return fmt.Errorf("motif name is too large (%d>%d)", len(m.Name), MaxNameLen)
		}
	}
	return nil
}
