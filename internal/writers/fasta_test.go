package writers

import (
	"bytes"
	"strings"
	"testing"
)

func TestFastaWriterWritesReplicateHeader(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartFastaWriter(&buf, 0)
	in <- ShuffleRecord{Name: "seq1", Rep: 1, Seq: []byte("ACGTACGTAC")}
	in <- ShuffleRecord{Name: "seq1", Rep: 2, Seq: []byte("GGGGCCCCAA")}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ">seq1-1\n") || !strings.Contains(out, ">seq1-2\n") {
		t.Fatalf("missing replicate headers: %q", out)
	}
}

func TestFastaWriterNoSuffixForSingleReplicate(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartFastaWriter(&buf, 0)
	in <- ShuffleRecord{Name: "seq1", Comment: "desc", Rep: 0, Seq: []byte("ACGT")}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), ">seq1 desc\n") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestFastaWriterWrapsAt60Columns(t *testing.T) {
	seq := bytes.Repeat([]byte("A"), 125)
	var buf bytes.Buffer
	in, errCh := StartFastaWriter(&buf, 0)
	in <- ShuffleRecord{Name: "long", Seq: seq}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 { // header + 3 sequence lines (60, 60, 5)
		t.Fatalf("want 4 lines, got %d: %q", len(lines), lines)
	}
	if len(lines[1]) != 60 || len(lines[2]) != 60 || len(lines[3]) != 5 {
		t.Fatalf("unexpected line wrap: %v", lines)
	}
}
