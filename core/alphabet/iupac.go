package alphabet

// consensusProbs holds the A/C/G/T probability row for each IUPAC ambiguity
// code a consensus-motif ("-1 <consensus>") position can use. Index order
// matches consensusIndex below. Values mirror a consensus letter standing in
// for an equal mix of the bases it represents.
var consensusProbs = [][4]float64{
	{1.0, 0.0, 0.0, 0.0},              // A
	{0.0, 1.0, 0.0, 0.0},              // C
	{0.0, 0.0, 1.0, 0.0},              // G
	{0.0, 0.0, 0.0, 1.0},              // T/U
	{0.0, 0.5, 0.0, 0.5},              // Y = C/T
	{0.5, 0.0, 0.5, 0.0},              // R = A/G
	{0.5, 0.0, 0.0, 0.5},              // W = A/T
	{0.0, 0.5, 0.5, 0.0},              // S = C/G
	{0.0, 0.0, 0.5, 0.5},              // K = G/T
	{0.5, 0.5, 0.0, 0.0},              // M = A/C
	{0.333, 0.0, 0.333, 0.333},        // D = A/G/T
	{0.333, 0.333, 0.333, 0.0},        // V = A/C/G
	{0.333, 0.333, 0.0, 0.333},        // H = A/C/T
	{0.0, 0.333, 0.333, 0.333},        // B = C/G/T
	{0.25, 0.25, 0.25, 0.25},          // N = any
}

var consensusIndex [256]int

func init() {
	for i := range consensusIndex {
		consensusIndex[i] = -1
	}
	set := func(c byte, idx int) { consensusIndex[c] = idx }
	for _, pair := range []struct {
		upper, lower byte
		idx          int
	}{
		{'A', 'a', 0}, {'C', 'c', 1}, {'G', 'g', 2}, {'T', 't', 3},
		{'Y', 'y', 4}, {'R', 'r', 5}, {'W', 'w', 6}, {'S', 's', 7},
		{'K', 'k', 8}, {'M', 'm', 9}, {'D', 'd', 10}, {'V', 'v', 11},
		{'H', 'h', 12}, {'B', 'b', 13}, {'N', 'n', 14},
	} {
		set(pair.upper, pair.idx)
		set(pair.lower, pair.idx)
	}
	set('U', 3)
	set('u', 3)
}

// ConsensusProbs returns the A/C/G/T probability row for an IUPAC ambiguity
// letter, and whether the letter was recognized.
func ConsensusProbs(c byte) (probs [4]float64, ok bool) {
	idx := consensusIndex[c]
	if idx < 0 {
		return probs, false
	}
	return consensusProbs[idx], true
}

// complement maps a base (and IUPAC ambiguity code) to its complement,
// preserving case. Unrecognized bytes complement to 'N'.
var complement [256]byte

func init() {
	pairs := [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'},
		{'R', 'Y'}, {'Y', 'R'}, {'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'M', 'K'},
		{'B', 'V'}, {'V', 'B'}, {'D', 'H'}, {'H', 'D'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[1]] = p[0]
	}
	// U complements to A one way only, so A keeps complementing to T.
	complement['U'] = 'A'
	// lower-case mirrors, used for masked/soft-masked sequence.
	for c, comp := range complement {
		if comp == 0 {
			continue
		}
		lc := toLower(byte(c))
		if complement[lc] == 0 {
			complement[lc] = toLower(comp)
		}
	}
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Complement returns the complementary base for b, or 'N' if unrecognized.
func Complement(b byte) byte {
	c := complement[b]
	if c == 0 {
		return 'N'
	}
	return c
}

// ReverseComplement returns the reverse complement of seq as a new slice.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return out
}
