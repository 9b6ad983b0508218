package writers

import (
	"bufio"
	"fmt"
	"io"

	"yamscan-core/scanner"
)

// HeaderInfo carries the run-level summary line yamscan prints before its
// hit rows, matching the original tool's "##MotifCount=... SeqCount=..."
// comment line and the column header beneath it.
type HeaderInfo struct {
	Args            []string
	MotifCount      int
	MotifSize       int64
	SeqCount        int
	SeqSize         int64
	GCPercent       float64
	Unknowns        int64
	MaxPossibleHits int64

	BEDMode  bool
	BEDCount int
	BEDSize  int64
}

// WriteHeader writes the "##yamscan v..." invocation line, the summary
// comment line, and the TSV column header, in that order.
func WriteHeader(w io.Writer, version string, h HeaderInfo) error {
	if _, err := fmt.Fprintf(w, "##yamscan v%s [", version); err != nil {
		return err
	}
	for _, a := range h.Args {
		if _, err := fmt.Fprintf(w, " %s", a); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, " ]\n"); err != nil {
		return err
	}

	if h.BEDMode {
		_, err := fmt.Fprintf(w,
			"##MotifCount=%d MotifSize=%d BedCount=%d BedSize=%d SeqCount=%d SeqSize=%d GC=%.2f%% Ns=%d\n",
			h.MotifCount, h.MotifSize, h.BEDCount, h.BEDSize, h.SeqCount, h.SeqSize, h.GCPercent, h.Unknowns)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, "##bed_range\tbed_name\tseq_name\tstart\tend\tstrand\tmotif\tpvalue\tscore\tscore_pct\tmatch\n")
		return err
	}

	_, err := fmt.Fprintf(w,
		"##MotifCount=%d MotifSize=%d SeqCount=%d SeqSize=%d GC=%.2f%% Ns=%d MaxPossibleHits=%d\n",
		h.MotifCount, h.MotifSize, h.SeqCount, h.SeqSize, h.GCPercent, h.Unknowns, h.MaxPossibleHits)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, "##seq_name\tstart\tend\tstrand\tmotif\tpvalue\tscore\tscore_pct\tmatch\n")
	return err
}

// writeHitRow prints one hit, plain or BED-prefixed, matching the original
// tool's PRINT_RES / PRINT_RES_BED formats: the raw ×1000 integer score is
// rendered back to its real-valued log-odds score by dividing by 1000.
func writeHitRow(w *bufio.Writer, h scanner.Hit) error {
	score := float64(h.Score) / 1000.0
	if h.InBED {
		_, err := fmt.Fprintf(w, "%s:%d-%d(%c)\t%s\t%s\t%d\t%d\t%c\t%s\t%.9g\t%.3f\t%.1f\t%s\n",
			h.BEDChrom, h.BEDStart, h.BEDEnd, h.BEDStrand, h.BEDRange,
			h.SeqName, h.Start, h.End, h.Strand, h.Motif, h.PValue, score, h.Percent, h.Match)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%c\t%s\t%.9g\t%.3f\t%.1f\t%s\n",
		h.SeqName, h.Start, h.End, h.Strand, h.Motif, h.PValue, score, h.Percent, h.Match)
	return err
}

// StartHitWriter spins up a goroutine that drains hits from the returned
// channel and writes each as one TSV row to out, in receive order. Sending
// on the returned channel is the only way to write; close it to signal
// end-of-stream and read the final error (nil on success) off the error
// channel.
func StartHitWriter(out io.Writer, bufSize int) (chan<- scanner.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 256
	}
	in := make(chan scanner.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		w := bufio.NewWriterSize(out, 256*1024)
		var err error
		for h := range in {
			if err != nil {
				continue
			}
			err = writeHitRow(w, h)
		}
		if err == nil {
			err = w.Flush()
		}
		errCh <- err
	}()

	return in, errCh
}
