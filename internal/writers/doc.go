// Package writers formats and streams yamscan/yamshuf output: TSV hit rows
// (plain or BED-prefixed), the per-sequence composition report, and
// shuffled-sequence FASTA. Each Start* function follows the teacher's
// channel-writer shape (internal/writers/product.go's StartProductWriter):
// spin up one goroutine owning the destination io.Writer, hand the caller a
// channel to feed it plus an error channel to collect the final result, so
// a single goroutine — not a shared mutex — serializes every write.
package writers
