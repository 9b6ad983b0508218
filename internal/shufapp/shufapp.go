// Package shufapp wires yamshuf's command line, FASTA loading, the four
// shuffle algorithms, and FASTA output into the RunContext entry point
// cmd/yamshuf calls, following the same RunContext(ctx, argv, stdout,
// stderr) int shape internal/app uses for yamscan.
package shufapp

import (
	"context"
	"fmt"
	"io"

	"yamscan-core/rng"
	"yamscan-core/seqio"
	"yamscan-core/seqstats"
	"yamscan-core/shuffle"

	"yamscan/internal/logging"
	"yamscan/internal/shufcli"
	"yamscan/internal/writers"
)

const usage = `Usage: yamshuf [options] -i <seqs.fa>

  -i <str>   Input FASTA file ('-' for stdin)
  -o <str>   Output file (default stdout)
  -k <int>   K-mer size [3]
  -m         Shuffle via a first-order Markov chain instead of exact k-mer preservation
  -l         Shuffle via non-overlapping k-mer blocks instead of exact k-mer preservation
  -s <int>   RNG seed [4]
  -r <int>   Extra shuffled replicates per sequence [0]
  -R         Reseed the RNG for every sequence instead of once globally
  -g         Accepted; has no effect on shuffling (warns under -w)
  -n         Emit U instead of T (RNA output)
  -v         Verbose progress messages
  -w         Print warnings
  -h         Show this help
`

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	opt, err := shufcli.Parse(argv)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, usage)
		return 2
	}
	if opt.Help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	log := logging.New(stderr, opt.Verbose, opt.Warn)

	if opt.LeaveGaps {
		// Gap-aware shuffling (skip over '.'/'-' runs rather than treating
		// them as ordinary symbols) isn't implemented: the original tool
		// carries the same flag as a no-op with a TODO beside every shuffle
		// call site.
		log.Warnf("-g is accepted but gap-aware shuffling is not yet implemented")
	}

	sf, err := seqio.Open(opt.SeqFile)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 3
	}
	records, err := seqio.ReadAll(sf)
	_ = sf.Close()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	var out io.Writer = stdout
	var outCloser io.Closer
	if opt.OutFile != "" {
		f, err := writers.CreateFile(opt.OutFile)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 3
		}
		out = f
		outCloser = f
	}

	recCh, writeErr := writers.StartFastaWriter(out, 64)

	isDNA := !opt.RNAOut
	totalReps := opt.TotalReplicates()

	g := rng.NewFromSeed(opt.Seed)
	var eulerScratch shuffle.EulerScratch
	var markovTab []uint64
	if opt.K > 1 && opt.Method == shufcli.MethodMarkov {
		markovTab = make([]uint64, shuffle.TableSize(opt.K))
	}

	for _, rec := range records {
		if opt.Verbose {
			st := seqstats.Compute(rec.Seq)
			log.Verbosef("%s: size=%d gc=%.2f%% n=%d", rec.ID, st.Size, st.GCPercent, st.Unknowns)
		}

		if opt.ResetSeed {
			g = rng.NewFromSeed(opt.Seed)
		}

		if len(rec.Seq) < opt.K*2 {
			if opt.Verbose {
				log.Verbosef("%s: sequence too short to shuffle (size=%d, k=%d)", rec.ID, len(rec.Seq), opt.K)
			}
			continue
		}

		seq := append([]byte(nil), rec.Seq...)
		for rep := 0; rep < totalReps; rep++ {
			shuffleOnce(seq, opt, isDNA, g, &eulerScratch, markovTab)
			shuffled := append([]byte(nil), seq...)
			recCh <- writers.ShuffleRecord{Name: rec.ID, Comment: rec.Comment, Rep: rep, Seq: shuffled}
		}
	}
	close(recCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, "Error:", werr)
		return 3
	}
	if outCloser != nil {
		if err := outCloser.Close(); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 3
		}
	}
	return 0
}

// shuffleOnce reshuffles seq in place using whichever algorithm opt
// selects, falling back to a plain Fisher-Yates permutation at k=1 the same
// way the original tool special-cases it regardless of -m/-l.
func shuffleOnce(seq []byte, opt shufcli.Options, isDNA bool, g *rng.RNG, eulerScratch *shuffle.EulerScratch, markovTab []uint64) {
	switch {
	case opt.K == 1:
		shuffle.FisherYates(seq, g)
	case opt.Method == shufcli.MethodLinear:
		shuffle.Linear(seq, opt.K, g)
	case opt.Method == shufcli.MethodMarkov:
		for i := range markovTab {
			markovTab[i] = 0
		}
		shuffle.CountKmers(seq, opt.K, markovTab)
		shuffle.Markov(seq, opt.K, markovTab, isDNA, g)
	default:
		shuffle.Euler(seq, opt.K, isDNA, g, eulerScratch)
	}
}
