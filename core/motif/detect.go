package motif

import (
	"bufio"
	"io"
	"strings"
)

// Format identifies one of the four motif file formats yamscan-core
// understands.
type Format int

const (
	Unknown Format = iota
	MEME
	HOMER
	JASPAR
	HOCOMOCO
)

func (f Format) String() string {
	switch f {
	case MEME:
		return "MEME"
	case HOMER:
		return "HOMER"
	case JASPAR:
		return "JASPAR"
	case HOCOMOCO:
		return "HOCOMOCO"
	default:
		return "unknown"
	}
}

// Detect sniffs a motif file's format by scanning its header lines, the way
// the original tool's detector does: a "MEME version" line decides MEME
// outright; otherwise the first '>'-prefixed header commits to the
// JASPAR/HOMER/HOCOMOCO family, disambiguated by the following non-empty
// line and the header itself (an "A [...]" row means JASPAR; otherwise a
// tab in the '>' header line means HOMER; anything else is HOCOMOCO, unless
// the row contains a '-', which the original tool refuses to read as a PWM).
func Detect(r io.Reader) (Format, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	sawHeader := false
	headerHadTab := false

	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, "MEME version ") {
			return MEME, nil
		}
		if sawHeader {
			hasBracketOpen := strings.Contains(line, "[")
			hasBracketClose := strings.Contains(line, "]")
			startsWithA := len(line) > 0 && line[0] == 'A'
			switch {
			case startsWithA && hasBracketOpen && hasBracketClose:
				return JASPAR, nil
			case startsWithA || hasBracketOpen || hasBracketClose:
				return Unknown, errMalformedJaspar
			case headerHadTab:
				return HOMER, nil
			case strings.Contains(line, "-"):
				return Unknown, errHocomocoPWM
			default:
				return HOCOMOCO, nil
			}
		} else if strings.HasPrefix(line, ">") {
			headerHadTab = strings.Contains(line, "\t")
			sawHeader = true
		}
	}
	if err := sc.Err(); err != nil {
		return Unknown, err
	}
	return Unknown, nil
}
