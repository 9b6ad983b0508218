package seqio

import (
	"bufio"
	"fmt"
	"io"
)

// LineWidth is the column at which FASTA sequence lines wrap on output.
const LineWidth = 60

// WriteRecord writes one FASTA record, wrapping its sequence at LineWidth
// columns. header is written verbatim after '>' (including any suffix a
// caller has already appended, e.g. a replicate number).
func WriteRecord(w *bufio.Writer, header string, seq []byte) error {
	if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
		return err
	}
	for i := 0; i < len(seq); i += LineWidth {
		end := i + LineWidth
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := w.Write(seq[i:end]); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// ShuffleHeader builds a shuffled-output FASTA header: the original name,
// its comment if any, and a "-N" replicate suffix if n is nonzero (n==0
// means "the only replicate", so no suffix is added), matching yamshuf's
// write_seq.
func ShuffleHeader(name, comment string, n int) string {
	switch {
	case comment != "" && n != 0:
		return fmt.Sprintf("%s %s-%d", name, comment, n)
	case comment != "":
		return fmt.Sprintf("%s %s", name, comment)
	case n != 0:
		return fmt.Sprintf("%s-%d", name, n)
	default:
		return name
	}
}

// NewWriter returns a buffered writer over w, sized to amortize syscalls
// across many short FASTA records the way the scanner's result stream
// does.
func NewWriter(w io.Writer) *bufio.Writer {
	return bufio.NewWriterSize(w, 256*1024)
}
