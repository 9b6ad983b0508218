// Command yamscan scans FASTA sequences for motif matches above a
// p-value-derived score threshold, exactly as the original C tool does,
// reporting one TSV row per hit.
package main

import (
	"context"
	"os"
	"os/signal"

	"yamscan/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
