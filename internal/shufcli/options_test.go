package shufcli

import "testing"

func TestParseDefaults(t *testing.T) {
	opt, err := Parse([]string{"-i", "seqs.fa"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opt.K != defaultK || opt.Seed != defaultSeed || opt.Method != MethodEuler {
		t.Fatalf("unexpected defaults: %+v", opt)
	}
	if opt.TotalReplicates() != 1 {
		t.Fatalf("want 1 total replicate by default, got %d", opt.TotalReplicates())
	}
}

func TestParseRejectsMarkovAndLinearTogether(t *testing.T) {
	_, err := Parse([]string{"-i", "seqs.fa", "-m", "-l"})
	if err == nil {
		t.Fatal("want error for -m and -l together")
	}
}

func TestParseRejectsKTooLargeForEuler(t *testing.T) {
	_, err := Parse([]string{"-i", "seqs.fa", "-k", "20"})
	if err == nil {
		t.Fatal("want error for -k exceeding max under euler shuffle")
	}
}

func TestParseAllowsLargeKForLinear(t *testing.T) {
	opt, err := Parse([]string{"-i", "seqs.fa", "-k", "20", "-l"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opt.K != 20 || opt.Method != MethodLinear {
		t.Fatalf("unexpected options: %+v", opt)
	}
}

func TestParseRequiresInputFile(t *testing.T) {
	_, err := Parse(nil)
	if err == nil {
		t.Fatal("want error when -i missing")
	}
}

func TestParseRejectsZeroSeed(t *testing.T) {
	_, err := Parse([]string{"-i", "seqs.fa", "-s", "0"})
	if err == nil {
		t.Fatal("want error for -s 0")
	}
}

func TestParseRepeatsAddsReplicates(t *testing.T) {
	opt, err := Parse([]string{"-i", "seqs.fa", "-r", "4"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opt.TotalReplicates() != 5 {
		t.Fatalf("want 5 total replicates, got %d", opt.TotalReplicates())
	}
}
