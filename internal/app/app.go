// Package app wires yamscan's command line, motif/sequence loading, the
// scanning pipeline, and result output into the single RunContext entry
// point cmd/yamscan calls, following the teacher's RunContext(ctx, argv,
// stdout, stderr) int shape (internal/app/app.go, internal/appcore/core.go)
// and its 0/2/3/130 exit code convention.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"yamscan-core/bedio"
	"yamscan-core/dedup"
	"yamscan-core/motif"
	"yamscan-core/scanner"
	"yamscan-core/seqio"
	"yamscan-core/seqstats"

	"yamscan/internal/cli"
	"yamscan/internal/ctx"
	"yamscan/internal/logging"
	"yamscan/internal/pipeline"
	"yamscan/internal/statsreport"
	"yamscan/internal/version"
	"yamscan/internal/writers"
)

const usage = `Usage: yamscan [options] -s <seqs.fa> {-m <motifs> | -1 <consensus>}

  -m <str>    Motif file (MEME/HOMER/JASPAR/HOCOMOCO format)
  -1 <str>    IUPAC consensus sequence, scanned in place of a motif file
  -s <str>    Sequence FASTA file to scan ('-' for stdin); given alone
              (without -m/-1) prints a per-sequence composition report
  -x <str>    BED file restricting the scan to named ranges
  -o <str>    Output file (default stdout)
  -b <str>    Comma-separated A,C,G,T background frequencies
  -f          Scan the forward strand only (default both strands)
  -l          Accepted; has no effect (sequences are always read fully into memory)
  -t <float>  P-value threshold [0.0001]
  -0          Force the score threshold to zero instead of deriving it from -t
  -p <int>    Pseudocount [1]
  -n <int>    Number of sites, for MEME-format motifs without one [1000]
  -j <int>    Worker threads [1]
  -d          Disambiguate duplicate names instead of erroring
  -M          Treat lowercase-masked bases as non-standard
  -r          Keep the full FASTA header instead of trimming at the first space
  -g          Show a progress bar while scanning
  -v          Verbose progress messages
  -w          Print warnings
  -h          Show this help
`

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	start := time.Now()

	opt, err := cli.Parse(argv)
	if err != nil {
		fmt.Fprintln(stderr, cli.UsageError(err))
		fmt.Fprint(stderr, usage)
		return 2
	}
	if opt.Help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	log := logging.New(stderr, opt.Verbose, opt.Warn)
	warnf := func(s string) { log.Warnf("%s", s) }
	verbosef := func(s string) { log.Verbosef("%s", s) }

	background := motif.UniformBackground
	if opt.UseUserBkg {
		background, err = motif.ParseUserBackground(opt.UserBkg)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
	}
	background = motif.Normalize(background, warnf)

	parseOpts := &motif.ParseOptions{
		Background:  background,
		UseUserBkg:  opt.UseUserBkg,
		NSites:      float64(opt.NSites),
		Pseudocount: float64(opt.Pseudocount),
		TrimNames:   opt.TrimNames,
		ScanRC:      opt.ScanRC,
		Warn:        warnf,
		Verbose:     verbosef,
	}

	var motifs []*motif.Motif
	switch {
	case opt.HasConsensus:
		m, err := motif.NewConsensusMotif(opt.Consensus, parseOpts)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
		motifs = []*motif.Motif{m}
	case opt.HasMotifs:
		mf, err := seqio.Open(opt.MotifFile)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 3
		}
		motifs, _, err = motif.Load(mf, parseOpts)
		_ = mf.Close()
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
	}

	if len(motifs) > 0 {
		names := make([]string, len(motifs))
		for i, m := range motifs {
			names[i] = m.Name
		}
		lineOf := func(i int) int { return motifs[i].FileLineNum }
		if err := dedup.Apply(names, lineOf, dedup.Options{Allow: opt.Dedup, Kind: "motif"}); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
		for i, m := range motifs {
			m.Name = names[i]
		}
	}

	if !opt.HasSeqs {
		fmt.Fprintln(stderr, "Error: missing -s <seqs.fa>")
		return 2
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

	seqNames := make([]string, len(records))
	for i, r := range records {
		seqNames[i] = r.FullName(opt.TrimNames)
	}
	lineOf := func(i int) int { return records[i].Line }
	if err := dedup.Apply(seqNames, lineOf, dedup.Options{Allow: opt.Dedup, Kind: "sequence"}); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	for i := range records {
		records[i].ID = seqNames[i]
	}
	seqs := ctx.NewSeqSet(records)

	var resolved []bedio.Resolved
	if opt.UseBED {
		bf, err := seqio.Open(opt.BEDFile)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 3
		}
		regions, err := bedio.Read(bf, bedio.ReadOptions{TrimNames: opt.TrimNames})
		_ = bf.Close()
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
		resolved, err = bedio.Resolve(regions, seqs, seqs.IndexOf, warnf)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
	}

	var totalSize int64
	var gcSum float64
	var gcCount int
	var unknowns int64
	for _, r := range records {
		totalSize += int64(len(r.Seq))
		st := seqstats.Compute(r.Seq)
		unknowns += st.Unknowns
		if st.Size > st.Unknowns {
			gcSum += st.GCPercent * float64(st.Size-st.Unknowns)
			gcCount += int(st.Size - st.Unknowns)
		}
	}
	overallGC := 0.0
	if gcCount > 0 {
		overallGC = gcSum / float64(gcCount)
	}

	if opt.SeqStatsMode() {
		return runSeqStats(stdout, seqs, resolved, opt.UseBED)
	}

	if len(motifs) == 0 {
		fmt.Fprintln(stderr, "Error: missing one of -m, -1")
		return 2
	}

	var maxMotifSize int64
	for _, m := range motifs {
		if int64(m.Size) > maxMotifSize {
			maxMotifSize = int64(m.Size)
		}
	}

	nWorkers := cli.EffectiveThreads(opt, len(motifs))
	pipelineCfg := pipeline.Config{
		Workers:       nWorkers,
		Background:    parseOpts.Background,
		PValue:        opt.PValue,
		ThresholdOpts: opt.ThresholdOptions(),
	}
	if opt.Progress {
		pipelineCfg.Progress = func(done, total int) {
			fmt.Fprintf(stderr, "\rScanning motif %d/%d", done, total)
			if done == total {
				fmt.Fprintln(stderr)
			}
		}
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

	orient := scanner.Both
	if !opt.ScanRC {
		orient = scanner.ForwardOnly
	}

	hitCh, writeErr := writers.StartHitWriter(out, nWorkers*4)

	header := writers.HeaderInfo{
		Args:            argv,
		MotifCount:      len(motifs),
		MotifSize:       maxMotifSize,
		SeqCount:        len(records),
		SeqSize:         totalSize,
		GCPercent:       overallGC,
		Unknowns:        unknowns,
		MaxPossibleHits: maxPossibleHits(records, motifs),
		BEDMode:         opt.UseBED,
		BEDCount:        len(resolved),
	}
	if opt.UseBED {
		for _, r := range resolved {
			header.BEDSize += r.End - r.Start
		}
	}
	if err := writers.WriteHeader(out, version.Version, header); err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, "Error:", err)
	}

	runCtx, cancel := context.WithCancel(parent)
	defer cancel()

	emit := func(h scanner.Hit) error {
		select {
		case hitCh <- h:
			return nil
		case <-runCtx.Done():
			return runCtx.Err()
		}
	}

	scanFn := func(m *motif.Motif, feed func(scanner.Hit) error) error {
		if opt.UseBED {
			for _, r := range resolved {
				rec := &records[r.SeqIndex]
				if err := scanner.ScanRange(m, rec.ID, rec.Seq, int(r.Start), int(r.End), r.Strand, r.Name, opt.Mask, feed); err != nil {
					return err
				}
			}
			return nil
		}
		for i := range records {
			if err := scanner.Scan(m, records[i].ID, records[i].Seq, orient, opt.Mask, feed); err != nil {
				return err
			}
		}
		return nil
	}

	perr := pipeline.Run(runCtx, motifs, pipelineCfg, scanFn, emit)
	close(hitCh)

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

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, "Error:", perr)
		return 3
	}

	if opt.Warn {
		if s := statsreport.Elapsed(time.Since(start), "complete the scan"); s != "" {
			fmt.Fprintln(stderr, s)
		}
		if s := statsreport.PeakMB(); s != "" {
			fmt.Fprintln(stderr, s)
		}
	}
	return 0
}

func runSeqStats(stdout io.Writer, seqs *ctx.SeqSet, resolved []bedio.Resolved, bedMode bool) int {
	if err := writers.WriteSeqStatsHeader(stdout, bedMode); err != nil && !writers.IsBrokenPipe(err) {
		return 3
	}
	rowCh, writeErr := writers.StartSeqStatsWriter(stdout, 64)
	if bedMode {
		for i, r := range resolved {
			rec := seqs.Records[r.SeqIndex]
			sub := rec.Seq[r.Start:r.End]
			rowCh <- writers.SeqStatsRow{
				Index: i + 1, Name: rec.ID, Stats: seqstats.Compute(sub),
				InBED: true, BEDChrom: r.SeqName, BEDStart: r.Start + 1, BEDEnd: r.End,
				BEDStrand: r.Strand, BEDName: r.Name,
			}
		}
	} else {
		for i, rec := range seqs.Records {
			rowCh <- writers.SeqStatsRow{Index: i + 1, Name: rec.ID, Stats: seqstats.Compute(rec.Seq)}
		}
	}
	close(rowCh)
	if err := <-writeErr; err != nil && !writers.IsBrokenPipe(err) {
		return 3
	}
	return 0
}

// maxPossibleHits caps the header's "MaxPossibleHits" summary field at twice
// the count of window positions across all sequences and motifs (one per
// strand, whether or not -f is given), matching the original tool's
// up-front sizing estimate.
func maxPossibleHits(records []seqio.Record, motifs []*motif.Motif) int64 {
	var total int64
	for _, m := range motifs {
		for _, r := range records {
			n := len(r.Seq) - m.Size + 1
			if n > 0 {
				total += int64(n) * 2
			}
		}
	}
	return total
}
