package cli

import "testing"

func TestParseDefaults(t *testing.T) {
	opt, err := Parse([]string{"-m", "motifs.meme", "-s", "seqs.fa"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !opt.HasMotifs || opt.MotifFile != "motifs.meme" {
		t.Fatalf("motif file not parsed: %+v", opt)
	}
	if !opt.HasSeqs || opt.SeqFile != "seqs.fa" {
		t.Fatalf("seq file not parsed: %+v", opt)
	}
	if opt.PValue != defaultPValue {
		t.Fatalf("want default p-value %v, got %v", defaultPValue, opt.PValue)
	}
	if !opt.ScanRC {
		t.Fatal("want ScanRC true by default")
	}
	if !opt.TrimNames || !opt.LowMem {
		t.Fatalf("want TrimNames/LowMem true by default: %+v", opt)
	}
}

func TestParseRejectsMotifAndConsensusTogether(t *testing.T) {
	_, err := Parse([]string{"-m", "motifs.meme", "-1", "ACGT", "-s", "seqs.fa"})
	if err == nil {
		t.Fatal("want error for -m and -1 together")
	}
}

func TestParseRejectsDedupAndBEDTogether(t *testing.T) {
	_, err := Parse([]string{"-m", "motifs.meme", "-s", "seqs.fa", "-x", "regions.bed", "-d"})
	if err == nil {
		t.Fatal("want error for -x and -d together")
	}
}

func TestParseRejectsManualThreshAndZeroTogether(t *testing.T) {
	_, err := Parse([]string{"-m", "motifs.meme", "-s", "seqs.fa", "-t", "0.05", "-0"})
	if err == nil {
		t.Fatal("want error for -t and -0 together")
	}
}

func TestParseConsensusModeOverridesDefaults(t *testing.T) {
	opt, err := Parse([]string{"-1", "ACGTACGT", "-s", "seqs.fa"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opt.PValue != 1 {
		t.Fatalf("want consensus pvalue 1, got %v", opt.PValue)
	}
	if opt.NSites != defaultNSites || opt.Pseudocount != defaultPseudocount {
		t.Fatalf("want default nsites/pseudocount restored in consensus mode: %+v", opt)
	}
}

func TestParseRequiresAtLeastOneInput(t *testing.T) {
	_, err := Parse(nil)
	if err == nil {
		t.Fatal("want error when no -m/-1/-s given")
	}
}

func TestSeqStatsModeDerivedFromSeqsOnly(t *testing.T) {
	opt, err := Parse([]string{"-s", "seqs.fa"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !opt.SeqStatsMode() {
		t.Fatal("want seq-stats mode when -s given without -m/-1")
	}
	opt, err = Parse([]string{"-s", "seqs.fa", "-m", "motifs.meme"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opt.SeqStatsMode() {
		t.Fatal("want scan mode, not seq-stats mode, when -m is also given")
	}
}

func TestEffectiveThreadsFallsBackToOneMotif(t *testing.T) {
	opt, err := Parse([]string{"-m", "motifs.meme", "-s", "seqs.fa", "-j", "8"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := EffectiveThreads(opt, 1); got != 1 {
		t.Fatalf("want 1 worker for a single motif, got %d", got)
	}
	if got := EffectiveThreads(opt, 5); got != 8 {
		t.Fatalf("want 8 workers for 5 motifs, got %d", got)
	}
}

func TestParseRejectsNonPositivePseudocount(t *testing.T) {
	_, err := Parse([]string{"-m", "motifs.meme", "-s", "seqs.fa", "-p", "0"})
	if err == nil {
		t.Fatal("want error for -p 0")
	}
}
