// Package statsreport prints the peak-memory and elapsed-time diagnostics
// both binaries emit under -w, matching the original tool's print_peak_mb
// and print_time.
package statsreport

import (
	"fmt"
	"runtime"
	"time"
)

// PeakMB formats the process's peak resident set size (approximated here
// via runtime.MemStats.Sys, the total memory obtained from the OS, since
// Go's runtime does not track a true peak RSS the way the original tool's
// getrusage-based peak_mem does) into a human string, or "" if negligible.
func PeakMB() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	bytes := float64(m.Sys)
	switch {
	case bytes > 1<<30:
		return fmt.Sprintf("Approx. peak memory usage: %.2f GB.", bytes/1024/1024/1024)
	case bytes > 1<<20:
		return fmt.Sprintf("Approx. peak memory usage: %.2f MB.", bytes/1024/1024)
	case bytes > 0:
		return fmt.Sprintf("Approx. peak memory usage: %.2f KB.", bytes/1024)
	default:
		return ""
	}
}

// Elapsed formats how long an operation named what took, or "" if it took
// under a second (not worth reporting).
func Elapsed(d time.Duration, what string) string {
	s := d.Seconds()
	switch {
	case s > 7200:
		return fmt.Sprintf("Needed %.2f hours to %s.", s/3600, what)
	case s > 120:
		return fmt.Sprintf("Needed %.2f minutes to %s.", s/60, what)
	case s > 1:
		return fmt.Sprintf("Needed %.0f seconds to %s.", s, what)
	default:
		return ""
	}
}
