package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerbosefGatedByFlag(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, true)
	l.Verbosef("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("Verbosef wrote output with verbose=false: %q", buf.String())
	}

	buf.Reset()
	l = New(&buf, true, true)
	l.Verbosef("hello %d", 1)
	if !strings.Contains(buf.String(), "hello 1") {
		t.Fatalf("Verbosef output = %q, want it to contain the formatted message", buf.String())
	}
}

func TestWarnfGatedByFlag(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true, false)
	l.Warnf("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("Warnf wrote output with warn=false: %q", buf.String())
	}

	buf.Reset()
	l = New(&buf, true, true)
	l.Warnf("careful %s", "now")
	if !strings.Contains(buf.String(), "careful now") {
		t.Fatalf("Warnf output = %q, want it to contain the formatted message", buf.String())
	}
}

func TestFatalfReturnsFatalError(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, false)
	err := l.Fatalf("boom %d", 7)
	if err == nil {
		t.Fatal("Fatalf should return a non-nil error")
	}
	if _, ok := err.(*FatalError); !ok {
		t.Fatalf("err = %T, want *FatalError", err)
	}
	if err.Error() != "boom 7" {
		t.Errorf("err.Error() = %q, want %q", err.Error(), "boom 7")
	}
	if !strings.Contains(buf.String(), "boom 7") {
		t.Errorf("Fatalf should log the message regardless of -w/-v gating, got %q", buf.String())
	}
}
