package writers

import (
	"bufio"
	"io"

	"yamscan-core/seqio"
)

// ShuffleRecord is one replicate of one shuffled sequence, ready to be
// written as a FASTA record.
type ShuffleRecord struct {
	Name    string
	Comment string
	Rep     int // 0 means "no replicate suffix", matching seqio.ShuffleHeader
	Seq     []byte
}

// StartFastaWriter spins up a goroutine that drains records from the
// returned channel and writes each as a 60-column-wrapped FASTA record to
// out, in receive order.
func StartFastaWriter(out io.Writer, bufSize int) (chan<- ShuffleRecord, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan ShuffleRecord, bufSize)
	errCh := make(chan error, 1)

	go func() {
		w := bufio.NewWriterSize(out, 256*1024)
		var err error
		for r := range in {
			if err != nil {
				continue
			}
			header := seqio.ShuffleHeader(r.Name, r.Comment, r.Rep)
			err = seqio.WriteRecord(w, header, r.Seq)
		}
		if err == nil {
			err = w.Flush()
		}
		errCh <- err
	}()

	return in, errCh
}
