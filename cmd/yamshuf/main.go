// Command yamshuf reshuffles FASTA sequences while preserving their k-mer
// composition (or, at k=1, a plain random permutation), writing one or more
// shuffled replicates per input sequence.
package main

import (
	"context"
	"os"
	"os/signal"

	"yamscan/internal/shufapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(shufapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
