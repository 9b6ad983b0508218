package seqio

import (
	"strings"
	"testing"
)

func TestReadAllBasic(t *testing.T) {
	in := ">seq1 a comment\nACGT\nACGT\n>seq2\nTTTT\n"
	records, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].ID != "seq1" || records[0].Comment != "a comment" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if string(records[0].Seq) != "ACGTACGT" {
		t.Errorf("records[0].Seq = %q, want ACGTACGT", records[0].Seq)
	}
	if records[1].ID != "seq2" || string(records[1].Seq) != "TTTT" {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestReadAllRejectsSeqBeforeHeader(t *testing.T) {
	if _, err := ReadAll(strings.NewReader("ACGT\n>seq1\nACGT\n")); err == nil {
		t.Fatal("want error for sequence data preceding any header")
	}
}

func TestReadAllRejectsEmptyInput(t *testing.T) {
	if _, err := ReadAll(strings.NewReader("")); err == nil {
		t.Fatal("want error for input with no records")
	}
}

func TestReadAllStripsCarriageReturns(t *testing.T) {
	records, err := ReadAll(strings.NewReader(">seq1\r\nACGT\r\n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(records[0].Seq) != "ACGT" {
		t.Errorf("Seq = %q, want ACGT (no trailing CR)", records[0].Seq)
	}
}

func TestFullNameTrimNamesOrNoComment(t *testing.T) {
	r := Record{ID: "seq1", Comment: "extra info"}
	if got := r.FullName(true); got != "seq1" {
		t.Errorf("FullName(true) = %q, want seq1", got)
	}
	if got := r.FullName(false); got != "seq1 extra info" {
		t.Errorf("FullName(false) = %q, want %q", got, "seq1 extra info")
	}
	noComment := Record{ID: "seq2"}
	if got := noComment.FullName(false); got != "seq2" {
		t.Errorf("FullName(false) with no comment = %q, want seq2", got)
	}
}
