// Package shufcli parses yamshuf's command line, mirroring internal/cli's
// approach of a single-letter getopt layout ("i:k:o:s:mlr:Rgnvwh") over the
// teacher's long-flag flag.FlagSet, since yamshuf's flags are likewise
// inherited from the C original.
package shufcli

import (
	"errors"
	"fmt"

	"github.com/pborman/getopt"
)

const (
	defaultK    = 3
	defaultSeed = 4
	maxK        = 9
)

// Method selects which shuffling algorithm a run uses.
type Method byte

const (
	MethodEuler Method = iota
	MethodMarkov
	MethodLinear
)

// Options holds every yamshuf flag.
type Options struct {
	SeqFile string // "-" means stdin
	OutFile string // "" means stdout

	K          int
	Method     Method
	Seed       uint64
	ResetSeed  bool // -R: reseed the RNG per sequence instead of once globally
	Repeats    int  // -r: extra shuffled replicates beyond the first
	LeaveGaps  bool // -g: accepted, has no effect on shuffling
	RNAOut     bool // -n: emit U instead of T
	Verbose    bool
	Warn       bool

	Help bool
}

// Default returns an Options populated with the original tool's defaults:
// k=3, seed=4, the Euler (k-mer-composition-preserving) shuffle, one
// replicate.
func Default() Options {
	return Options{K: defaultK, Method: MethodEuler, Seed: defaultSeed, Repeats: 0}
}

// TotalReplicates is Repeats+1: the original always emits at least one
// shuffled copy per input sequence.
func (o Options) TotalReplicates() int { return o.Repeats + 1 }

// Parse parses argv (excluding argv[0]) into Options.
func Parse(argv []string) (Options, error) {
	opt := Default()

	set := getopt.New()
	seqFile := set.StringLong("", 'i', "", "input FASTA file ('-' for stdin)")
	outFile := set.StringLong("", 'o', "", "output file (default stdout)")
	k := set.IntLong("", 'k', defaultK, "k-mer size")
	useMarkov := set.BoolLong("", 'm', "shuffle via a first-order Markov chain instead of exact k-mer preservation")
	useLinear := set.BoolLong("", 'l', "shuffle via non-overlapping k-mer blocks instead of exact k-mer preservation")
	seed := set.IntLong("", 's', int(defaultSeed), "RNG seed")
	repeats := set.IntLong("", 'r', 0, "extra shuffled replicates per sequence")
	resetSeed := set.BoolLong("", 'R', "reseed the RNG for every sequence instead of once globally")
	leaveGaps := set.BoolLong("", 'g', "accepted; has no effect on shuffling")
	rnaOut := set.BoolLong("", 'n', "emit U instead of T")
	verbose := set.BoolLong("", 'v', "verbose progress messages")
	warn := set.BoolLong("", 'w', "print warnings")
	help := set.BoolLong("", 'h', "show help")

	if err := set.Getopt(append([]string{"yamshuf"}, argv...), nil); err != nil {
		return opt, err
	}

	opt.Help = *help
	if opt.Help {
		return opt, nil
	}

	opt.SeqFile = *seqFile
	opt.OutFile = *outFile
	opt.K = *k
	opt.Seed = uint64(*seed)
	opt.Repeats = *repeats
	opt.ResetSeed = *resetSeed
	opt.LeaveGaps = *leaveGaps
	opt.RNAOut = *rnaOut
	opt.Verbose = *verbose
	opt.Warn = *warn

	switch {
	case *useMarkov && *useLinear:
		return opt, errors.New("cannot use both -m and -l")
	case *useMarkov:
		opt.Method = MethodMarkov
	case *useLinear:
		opt.Method = MethodLinear
	default:
		opt.Method = MethodEuler
	}

	if opt.SeqFile == "" {
		return opt, errors.New("-i is required")
	}
	if opt.K <= 0 {
		return opt, errors.New("-k must be a positive integer")
	}
	if opt.Method != MethodLinear && opt.K > maxK {
		return opt, fmt.Errorf("-k%d exceeds allowed max for Euler/Markov [max=%d]", opt.K, maxK)
	}
	if opt.Seed == 0 {
		return opt, errors.New("-s must be a positive integer")
	}
	if opt.Repeats < 0 {
		return opt, errors.New("-r must be a positive integer")
	}

	return opt, nil
}
