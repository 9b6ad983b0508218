// Package cli parses yamscan's command line. Flags follow the original
// tool's single-letter getopt layout ("m:1:s:o:b:flt:p:n:j:x:dgrMvwh0")
// rather than the teacher's long-flag stdlib flag.FlagSet: this tool's
// flags are inherited straight from the C original, so github.com/pborman/getopt
// (grounded on other_examples/pbenner-gonetics__pwmScanSequences.go, which
// scans PWMs across FASTA the same way) is the better fit — it gives short
// runes without inventing long spellings the original never had.
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pborman/getopt"

	"yamscan-core/dist"
)

const (
	defaultPValue      = 0.0001
	defaultNSites      = 1000
	defaultPseudocount = 1
)

// Options holds every yamscan flag plus the parsed positional-free argument
// set (yamscan takes no positional arguments, only -m/-1/-s/-x).
type Options struct {
	MotifFile  string
	Consensus  string
	HasMotifs  bool
	HasConsensus bool

	SeqFile string
	HasSeqs bool

	BEDFile string
	UseBED  bool

	OutFile string // "" means stdout

	UserBkg    string
	UseUserBkg bool

	ScanRC      bool // -f clears this (forward-only)
	PValue      float64
	ManualThresh bool
	Pseudocount int
	NSites      int
	Threads     int
	Mask        bool
	Dedup       bool
	TrimNames   bool // -r clears this
	LowMem      bool // -l clears this
	ThreshZero  bool
	Progress    bool // -g: show a progress bar while scanning
	Verbose     bool
	Warn        bool

	Help    bool
	Version bool
}

// SeqStatsMode reports whether this run should emit the per-sequence
// composition report instead of scanning: the original tool derives this
// from "-s given without -m/-1", it is not a flag of its own.
func (o Options) SeqStatsMode() bool {
	return o.HasSeqs && !o.HasMotifs && !o.HasConsensus
}

// Default returns an Options populated with the original tool's defaults.
func Default() Options {
	return Options{
		ScanRC:    true,
		PValue:    defaultPValue,
		NSites:    defaultNSites,
		Pseudocount: defaultPseudocount,
		TrimNames: true,
		LowMem:    true,
		Threads:   1,
	}
}

// Parse parses argv (excluding argv[0]) into Options, applying the same
// cross-flag validation and derived-state rules as the original tool's
// main(): -m/-1 mutual exclusion, -d/-x mutual exclusion, -t/-0 and -1/-0
// mutual exclusion, and the consensus-mode background/pvalue/nsites/
// pseudocount overrides.
func Parse(argv []string) (Options, error) {
	opt := Default()

	set := getopt.New()
	motifFile := set.StringLong("", 'm', "", "motif file")
	consensus := set.StringLong("", '1', "", "IUPAC consensus sequence")
	seqFile := set.StringLong("", 's', "", "sequence FASTA file ('-' for stdin)")
	outFile := set.StringLong("", 'o', "", "output file (default stdout)")
	userBkg := set.StringLong("", 'b', "", "comma-separated A,C,G,T background frequencies")
	bedFile := set.StringLong("", 'x', "", "BED file restricting the scan to named ranges")
	forwardOnly := set.BoolLong("", 'f', "scan forward strand only")
	lowMemOff := set.BoolLong("", 'l', "accepted; has no effect (sequences are always read fully into memory)")
	pvalueStr := set.StringLong("", 't', "", "p-value threshold ["+fmt.Sprint(defaultPValue)+"]")
	pseudocount := set.IntLong("", 'p', defaultPseudocount, "pseudocount")
	nsites := set.IntLong("", 'n', defaultNSites, "number of sites (MEME-format motifs)")
	threads := set.IntLong("", 'j', 1, "worker threads")
	dedup := set.BoolLong("", 'd', "disambiguate duplicate names instead of erroring")
	progress := set.BoolLong("", 'g', "show a progress bar while scanning")
	trimOff := set.BoolLong("", 'r', "keep full FASTA header (don't trim at first space)")
	mask := set.BoolLong("", 'M', "treat lowercase-masked bases as non-standard")
	verbose := set.BoolLong("", 'v', "verbose progress messages")
	warn := set.BoolLong("", 'w', "print warnings")
	threshZero := set.BoolLong("", '0', "force the score threshold to zero instead of deriving it from -t")
	help := set.BoolLong("", 'h', "show help")

	if err := set.Getopt(append([]string{"yamscan"}, argv...), nil); err != nil {
		return opt, err
	}

	opt.Help = *help
	if opt.Help {
		return opt, nil
	}

	opt.MotifFile = *motifFile
	opt.HasMotifs = *motifFile != ""
	opt.Consensus = *consensus
	opt.HasConsensus = *consensus != ""
	opt.SeqFile = *seqFile
	opt.HasSeqs = *seqFile != ""
	opt.OutFile = *outFile
	opt.UserBkg = *userBkg
	opt.UseUserBkg = *userBkg != ""
	opt.BEDFile = *bedFile
	opt.UseBED = *bedFile != ""
	opt.ScanRC = !*forwardOnly
	opt.LowMem = !*lowMemOff
	if *pvalueStr != "" {
		v, err := strconv.ParseFloat(*pvalueStr, 64)
		if err != nil {
			return opt, fmt.Errorf("failed to parse -t value: %w", err)
		}
		opt.PValue = v
		opt.ManualThresh = true
	}
	opt.Pseudocount = *pseudocount
	opt.NSites = *nsites
	opt.Threads = *threads
	opt.Dedup = *dedup
	opt.Progress = *progress
	opt.TrimNames = !*trimOff
	opt.Mask = *mask
	opt.Verbose = *verbose
	opt.Warn = *warn
	opt.ThreshZero = *threshZero

	if opt.HasMotifs && opt.HasConsensus {
		return opt, errors.New("-m and -1 cannot both be used")
	}
	if opt.Dedup && opt.UseBED {
		return opt, errors.New("cannot use both -x and -d")
	}
	if opt.ManualThresh && opt.ThreshZero {
		return opt, errors.New("cannot use both -t and -0")
	}
	if opt.ThreshZero && opt.HasConsensus {
		return opt, errors.New("cannot use both -1 and -0")
	}
	if opt.PValue > 1.0 || opt.PValue < 0.0 {
		return opt, errors.New("-t cannot be less than 0 or more than 1")
	}
	if opt.Pseudocount <= 0 {
		return opt, errors.New("-p must be a positive integer")
	}
	if opt.NSites <= 0 {
		return opt, errors.New("-n must be a positive integer")
	}
	if opt.Threads <= 0 {
		return opt, errors.New("-j must be a positive integer")
	}
	if !opt.HasSeqs && !opt.HasMotifs && !opt.HasConsensus {
		return opt, errors.New("missing one of -m, -1, -s args")
	}

	if opt.HasConsensus {
		opt.PValue = 1
		opt.NSites = defaultNSites
		opt.Pseudocount = defaultPseudocount
	}

	return opt, nil
}

// ThresholdOptions derives the dist.ThresholdOptions this run's flags imply.
func (o Options) ThresholdOptions() dist.ThresholdOptions {
	return dist.ThresholdOptions{ForceZero: o.ThreshZero, IsConsensus: o.HasConsensus}
}

// EffectiveThreads applies the original tool's single-thread fallback: a
// consensus scan, a motifless/sequenceless run, or a single motif never
// benefits from more than one worker.
func EffectiveThreads(o Options, nMotifs int) int {
	if o.HasConsensus || !o.HasSeqs || !o.HasMotifs || nMotifs <= 1 {
		return 1
	}
	return o.Threads
}

// UsageError formats a flag-parsing failure the way the caller should print
// it to stderr before exiting non-zero.
func UsageError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
