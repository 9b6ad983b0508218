// Package alphabet maps DNA/RNA base characters to the dense 0..4 index
// space the PWM scoring engine is built around: A=0, C=1, G=2, T/U=3, and
// everything else (including lower-case soft-masked bases, in mask mode)
// collapses to 4, the "non-standard" row.
//
// This is a hand-rolled codec rather than a call into a richer alphabet
// library (biogo's alphabet.Nucleic models IUPAC redundancy generically):
// the scan loop indexes a PWM row with this mapping several billion times
// over a GB-scale genome, and a dense, branch-free array lookup is what
// keeps that loop tight. A generic Letter/interface-typed lookup would add
// dispatch overhead and IUPAC generality this engine never needs, since by
// the time a base reaches the scorer it is meant to have collapsed to
// exactly one of these five buckets.
package alphabet

// NonStandard is the index assigned to any byte that is not one of
// A, C, G, T, U (upper or lower case).
const NonStandard = 4

// NumBases is the width of a PWM row: four real bases plus the
// non-standard sentinel row.
const NumBases = 5

var base2index [256]byte

// maskIndex additionally routes lower-case a/c/g/t/u to NonStandard, used
// when soft-mask mode is enabled so repeat-masked sequence is skipped.
var maskIndex [256]byte

func init() {
	for i := range base2index {
		base2index[i] = NonStandard
		maskIndex[i] = NonStandard
	}
	set := func(c byte, idx byte) {
		base2index[c] = idx
		maskIndex[c] = idx
	}
	set('A', 0)
	set('C', 1)
	set('G', 2)
	set('T', 3)
	set('U', 3)
	set('a', 0)
	set('c', 1)
	set('g', 2)
	set('t', 3)
	set('u', 3)
	// mask mode additionally treats lower case as non-standard, overriding
	// the assignments just made for the lower-case letters.
	maskIndex['a'] = NonStandard
	maskIndex['c'] = NonStandard
	maskIndex['g'] = NonStandard
	maskIndex['t'] = NonStandard
	maskIndex['u'] = NonStandard
}

// Index returns the 0..4 index for a base character.
func Index(b byte) byte { return base2index[b] }

// MaskIndex returns the 0..4 index for a base character in soft-mask mode,
// where lower-case bases are treated as non-standard.
func MaskIndex(b byte) byte { return maskIndex[b] }

// Table returns the appropriate lookup table for the given masking mode.
// The returned array must not be mutated by the caller.
func Table(mask bool) *[256]byte {
	if mask {
		return &maskIndex
	}
	return &base2index
}

// IsStandard reports whether b is one of A/C/G/T/U in either case.
func IsStandard(b byte) bool { return base2index[b] != NonStandard }
