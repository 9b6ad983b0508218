package writers

import "os"

// CreateFile opens path for writing, truncating it if present, for the -o
// flag both binaries share as an alternative to stdout.
func CreateFile(path string) (*os.File, error) {
	return os.Create(path)
}
