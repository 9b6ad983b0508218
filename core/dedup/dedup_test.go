package dedup

import (
	"strings"
	"testing"
)

func TestApplyNoDuplicatesIsNoop(t *testing.T) {
	names := []string{"a", "b", "c"}
	if err := Apply(names, nil, Options{Kind: "motif"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("names mutated unexpectedly: %v", names)
	}
}

func TestApplyRejectsDuplicatesByDefault(t *testing.T) {
	names := []string{"a", "b", "a"}
	err := Apply(names, nil, Options{Kind: "motif"})
	if err == nil {
		t.Fatal("want error for duplicate names without Allow")
	}
	if !strings.Contains(err.Error(), "motif") {
		t.Errorf("error = %q, want it to mention the Kind", err)
	}
}

func TestApplyAllowDisambiguatesInPlace(t *testing.T) {
	names := []string{"a", "b", "a"}
	if err := Apply(names, nil, Options{Allow: true}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("non-duplicate names should be untouched: %v", names)
	}
	if names[2] != "a__N3" {
		t.Errorf("names[2] = %q, want a__N3 (__N + 1-based position in names appended)", names[2])
	}
}

func TestApplyRejectsNameOverCap(t *testing.T) {
	names := []string{strings.Repeat("a", 257)}
	err := Apply(names, nil, Options{Kind: "motif"})
	if err == nil {
		t.Fatal("want error for a motif name over the 256-character cap")
	}
}

func TestApplyDedupFailsWhenSuffixWouldOverflowCap(t *testing.T) {
	names := []string{strings.Repeat("a", 256), strings.Repeat("a", 256)}
	err := Apply(names, nil, Options{Allow: true, Kind: "motif"})
	if err == nil {
		t.Fatal("want error when the __N suffix would push the name over the cap")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("error = %q, want it to mention the name being too large", err)
	}
}

func TestApplyErrorMessageTruncatesAfterFive(t *testing.T) {
	names := []string{"x", "x", "x", "x", "x", "x", "x"}
	err := Apply(names, nil, Options{Kind: "sequence"})
	if err == nil {
		t.Fatal("want error for duplicate names")
	}
	if !strings.Contains(err.Error(), "Found 6 total non-unique names.") {
		t.Errorf("error = %q, want a truncation summary mentioning 6 total duplicates", err)
	}
}

func TestApplyUsesLineOfWhenProvided(t *testing.T) {
	names := []string{"a", "a"}
	lineOf := func(i int) int { return 10 + i }
	err := Apply(names, lineOf, Options{Kind: "motif"})
	if err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(err.Error(), "L11") {
		t.Errorf("error = %q, want it to report the duplicate's line via lineOf", err)
	}
}
