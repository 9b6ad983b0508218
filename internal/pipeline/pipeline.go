// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"yamscan-core/dist"
	"yamscan-core/motif"
	"yamscan-core/scanner"
)

// Config controls the scan pipeline.
type Config struct {
	Workers       int // number of worker goroutines (>=1)
	Background    [4]float64
	PValue        float64
	ThresholdOpts dist.ThresholdOptions

	// Progress, if non-nil, is called once per completed motif (done counts
	// up to total), matching the original tool's pb_lock-guarded progress
	// counter.
	Progress func(done, total int)
}

// ScanFunc scans one already-thresholded motif, reporting every hit via
// emit. It runs once per motif, on whichever worker owns that motif.
type ScanFunc func(m *motif.Motif, emit func(scanner.Hit) error) error

// partition returns the half-open index range [lo, hi) of motifs worker w
// owns out of n motifs split across nWorkers, inverting the original tool's
// per-motif assignment motifs[i]->thread = (i*nWorkers)/n.
func partition(w, nWorkers, n int) (lo, hi int) {
	lo = ceilDiv(w*n, nWorkers)
	hi = ceilDiv((w+1)*n, nWorkers)
	return lo, hi
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Run builds each motif's score distribution and threshold, then scans it
// via scanFn, splitting the motif list into Config.Workers contiguous
// slices scanned concurrently. Each worker owns one dist.Scratch, reused
// across every motif in its slice — never freed or reallocated between
// motifs, only grown.
//
// emit reports one hit; it is called concurrently from every worker and
// must serialize its own access to shared state (the result writer), the
// same way the original tool's per-hit fprintf calls interleave safely
// across threads without an explicit output lock.
//
// Run returns the first error any worker or scanFn call reports, or ctx's
// error if it was cancelled first.
func Run(ctx context.Context, motifs []*motif.Motif, cfg Config, scanFn ScanFunc, emit func(scanner.Hit) error) error {
	nWorkers := cfg.Workers
	if nWorkers < 1 {
		nWorkers = 1
	}
	n := len(motifs)
	if n == 0 {
		return nil
	}
	if nWorkers > n {
		nWorkers = n
	}

	var (
		mu       sync.Mutex
		firstErr error
		done     int
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	guardedEmit := func(h scanner.Hit) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return emit(h)
		}
	}

	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for w := 0; w < nWorkers; w++ {
		lo, hi := partition(w, nWorkers, n)
		go func(lo, hi int) {
			defer wg.Done()
			var scratch dist.Scratch
			for i := lo; i < hi; i++ {
				if failed() {
					return
				}
				select {
				case <-ctx.Done():
					fail(ctx.Err())
					return
				default:
				}

				m := motifs[i]
				if err := dist.Build(m, cfg.Background, &scratch); err != nil {
					fail(err)
					return
				}
				dist.SetThreshold(m, cfg.PValue, cfg.ThresholdOpts)

				if err := scanFn(m, guardedEmit); err != nil {
					fail(err)
					return
				}

				if cfg.Progress != nil {
					mu.Lock()
					done++
					d := done
					mu.Unlock()
					cfg.Progress(d, n)
				}
			}
		}(lo, hi)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
