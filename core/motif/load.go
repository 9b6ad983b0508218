package motif

import (
	"bytes"
	"fmt"
	"io"
)

// Load detects a motif file's format and parses it, per Detect's rules.
// It reads r fully into memory first, so detection and the real parse pass
// each read the buffered bytes from the start; r itself is read only once.
func Load(r io.Reader, opts *ParseOptions) ([]*Motif, Format, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, Unknown, err
	}
	format, err := Detect(bytes.NewReader(buf))
	if err != nil {
		return nil, Unknown, err
	}

	var motifs []*Motif
	switch format {
	case MEME:
		motifs, err = ParseMEME(bytes.NewReader(buf), opts)
	case HOMER:
		motifs, err = ParseHOMER(bytes.NewReader(buf), opts)
	case JASPAR:
		motifs, err = ParseJASPAR(bytes.NewReader(buf), opts)
	case HOCOMOCO:
		motifs, err = ParseHOCOMOCO(bytes.NewReader(buf), opts)
	default:
		return nil, Unknown, fmt.Errorf("failed to detect motif file format")
	}
	if err != nil {
		return nil, format, err
	}
	if len(motifs) > 100000 {
		opts.warn("yamscan may be quite slow to process this many motifs")
	}
	return motifs, format, nil
}
