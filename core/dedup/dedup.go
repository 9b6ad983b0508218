// Package dedup finds duplicate names in a name list and either rejects
// them or disambiguates them in place, mirroring yamscan's shared behavior
// for both duplicate motif names and duplicate sequence names.
package dedup

import (
	"fmt"
	"strconv"
)

// motifNameCap and seqNameCap mirror the original tool's independent
// MAX_NAME_SIZE and SEQ_NAME_MAX_CHAR constants: a motif name caps out at
// 256 characters, a sequence name at 512.
const (
	motifNameCap = 256
	seqNameCap   = 512
)

// Options controls how duplicates are handled.
type Options struct {
	// Allow disambiguates duplicates instead of failing (-d).
	Allow bool
	// Kind names what is being deduplicated, for error messages
	// ("motif" or "sequence"). It also selects the name-length cap.
	Kind string
}

func (o Options) maxLen() int {
	if o.Kind == "sequence" {
		return seqNameCap
	}
	return motifNameCap
}

// Apply scans names in order; every name that repeats an earlier one is
// either flagged as an error (returning up to the first 5 duplicates in the
// error message, plus a total count) or, with opts.Allow, has "__N" and its
// 1-based position in names appended so it becomes unique. names is modified in
// place when disambiguating. Every name, and every disambiguated name, must
// fit within the kind's length cap (256 for motifs, 512 for sequences); a
// name that is already too large, or that cannot be disambiguated within
// the cap, is a fatal error.
func Apply(names []string, lineOf func(int) int, opts Options) error {
	maxLen := opts.maxLen()
	for _, n := range names {
		if len(n) > maxLen {
			return fmt.Errorf("%s name is too large (%d>%d)", opts.Kind, len(n), maxLen)
		}
	}

	seen := make(map[string]bool, len(names))
	var dupIdx []int
	for i, n := range names {
		if seen[n] {
			dupIdx = append(dupIdx, i)
		} else {
			seen[n] = true
		}
	}
	if len(dupIdx) == 0 {
		return nil
	}

	if opts.Allow {
		for _, i := range dupIdx {
			suffix := "__N" + strconv.Itoa(i+1)
			if len(names[i])+len(suffix) > maxLen {
				return fmt.Errorf("failed to deduplicate %s #%d, name is too large", opts.Kind, i+1)
			}
			names[i] = names[i] + suffix
		}
		return nil
	}

	msg := fmt.Sprintf("encountered duplicate %s name (use -d to deduplicate)", opts.Kind)
	shown := dupIdx
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, i := range shown {
		if lineOf != nil {
			msg += fmt.Sprintf("\n    L%d #%d: %s", lineOf(i), i+1, names[i])
		} else {
			msg += fmt.Sprintf("\n    #%d: %s", i+1, names[i])
		}
	}
	if len(dupIdx) > 5 {
		msg += fmt.Sprintf("\n    ...\n    Found %d total non-unique names.", len(dupIdx))
	}
	return fmt.Errorf("%s", msg)
}
