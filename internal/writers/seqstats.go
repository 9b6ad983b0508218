package writers

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"yamscan-core/seqstats"
)

// SeqStatsRow is one sequence's (or BED region's) composition summary line,
// filled in by the caller from seqstats.Compute and, in BED mode, the
// resolved region it came from.
type SeqStatsRow struct {
	Index int // 1-based
	Name  string
	Stats seqstats.Stats

	InBED     bool
	BEDChrom  string
	BEDStart  int64
	BEDEnd    int64
	BEDStrand byte
	BEDName   string
}

// WriteSeqStatsHeader writes the "##seq_num..." or BED-prefixed column
// header for the sequence-composition report (-s given without -m/-1),
// matching the original tool's two fixed layouts.
func WriteSeqStatsHeader(w io.Writer, bedMode bool) error {
	if bedMode {
		_, err := fmt.Fprint(w, "##bed_range\tbed_name\tseq_num\tseq_name\tsize\tgc_pct\tn_count\n")
		return err
	}
	_, err := fmt.Fprint(w, "##seq_num\tseq_name\tsize\tgc_pct\tn_count\n")
	return err
}

func writeSeqStatsRow(w *bufio.Writer, r SeqStatsRow) error {
	gc := "nan"
	if !math.IsNaN(r.Stats.GCPercent) {
		gc = fmt.Sprintf("%.2f", r.Stats.GCPercent)
	}
	if r.InBED {
		_, err := fmt.Fprintf(w, "%s:%d-%d(%c)\t%s\t%d\t%s\t%d\t%s\t%d\n",
			r.BEDChrom, r.BEDStart, r.BEDEnd, r.BEDStrand, r.BEDName,
			r.Index, r.Name, r.Stats.Size, gc, r.Stats.Unknowns)
		return err
	}
	_, err := fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\n", r.Index, r.Name, r.Stats.Size, gc, r.Stats.Unknowns)
	return err
}

// StartSeqStatsWriter spins up a goroutine that drains rows from the
// returned channel and writes each as one TSV line to out.
func StartSeqStatsWriter(out io.Writer, bufSize int) (chan<- SeqStatsRow, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan SeqStatsRow, bufSize)
	errCh := make(chan error, 1)

	go func() {
		w := bufio.NewWriterSize(out, 64*1024)
		var err error
		for r := range in {
			if err != nil {
				continue
			}
			err = writeSeqStatsRow(w, r)
		}
		if err == nil {
			err = w.Flush()
		}
		errCh <- err
	}()

	return in, errCh
}
