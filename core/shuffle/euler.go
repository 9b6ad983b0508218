package shuffle

import (
	"yamscan-core/alphabet"
	"yamscan-core/rng"
)

// EulerScratch is the reusable buffer set a random-Eulerian-trail shuffle
// needs, sized for the largest k any sequence on this worker requires. It
// only ever grows, matching the engine's other per-worker scratch types.
type EulerScratch struct {
	kmerTab       []uint64
	invalidVertex []byte
	eulerPath     []uint64
	nextIndex     []uint64
}

func (s *EulerScratch) ensure(k int) {
	n := int(pow5[k])
	nv := int(pow5[k-1])
	if cap(s.kmerTab) < n {
		s.kmerTab = make([]uint64, n)
	} else {
		s.kmerTab = s.kmerTab[:n]
	}
	if cap(s.invalidVertex) < nv {
		s.invalidVertex = make([]byte, nv)
	} else {
		s.invalidVertex = s.invalidVertex[:nv]
	}
	if cap(s.eulerPath) < nv {
		s.eulerPath = make([]uint64, nv)
	} else {
		s.eulerPath = s.eulerPath[:nv]
	}
	if cap(s.nextIndex) < nv {
		s.nextIndex = make([]uint64, nv)
	} else {
		s.nextIndex = s.nextIndex[:nv]
	}
}

func countEdges(tab []uint64, offset int) uint64 {
	return tab[offset] + tab[offset+1] + tab[offset+2] + tab[offset+3] + tab[offset+4]
}

// Euler shuffles seq in place with a k-mer-composition-preserving shuffle:
// it treats every (k-1)-mer as a vertex and every k-mer as a directed edge
// in seq's de Bruijn graph, builds a random spanning arborescence rooted at
// the sequence's final (k-1)-mer (a loop-erased random walk from every
// vertex, per Wilson's algorithm), reserves one tree edge per vertex as a
// guaranteed exit, then walks a random Eulerian trail over the remaining
// edge pool, falling back to a vertex's reserved edge only once its pool is
// exhausted. The result uses every one of the original k-mers exactly
// once, so its k-mer spectrum is identical to the input's.
func Euler(seq []byte, k int, isDNA bool, g *rng.RNG, scratch *EulerScratch) {
	size := len(seq)
	scratch.ensure(k)
	kmerTab := scratch.kmerTab
	invalidVertex := scratch.invalidVertex
	eulerPath := scratch.eulerPath
	nextIndex := scratch.nextIndex

	for i := range kmerTab {
		kmerTab[i] = 0
	}
	for i := range invalidVertex {
		invalidVertex[i] = 0
	}
	CountKmers(seq, k, kmerTab)

	letterSet := letters(isDNA)
	for i := 0; i < k-1; i++ {
		seq[i] = letterSet[alphabet.Index(seq[i])]
	}
	seq[size-1] = letterSet[alphabet.Index(seq[size-1])]

	lastEdge := charsToKmer(seq, k, size-k)
	kmerTab[lastEdge]--

	nVertices := int(pow5[k-1])
	for i, j := 0, 0; i < nVertices; i, j = i+1, j+5 {
		if countEdges(kmerTab, j) == 0 {
			invalidVertex[i] = 1
		}
	}

	invalidVertex[charsToKmer(seq, k-1, size-k+1)] = 1

	if k > 2 {
		jMax := int(pow5[k-2])
		for i, j := 0, 0; i < nVertices; i, j = i+1, j+1 {
			if j == jMax {
				j = 0
			}
			nextIndex[i] = uint64(j) * 5
		}
	} else {
		for i := range nextIndex {
			nextIndex[i] = 0
		}
	}

	for i := 0; i < nVertices; i++ {
		u := uint64(i)
		for invalidVertex[u] == 0 {
			eulerPath[u] = pickNextLetterWeighted(kmerTab[u*5:u*5+5], g)
			u = eulerPath[u] + nextIndex[u]
		}
		u = uint64(i)
		for invalidVertex[u] == 0 {
			invalidVertex[u] = 1
			u = eulerPath[u] + nextIndex[u]
		}
	}

	for i := 0; i < nVertices; i++ {
		edge := uint64(i)*5 + eulerPath[i]
		if edge != lastEdge && kmerTab[edge] > 0 {
			kmerTab[edge]--
		}
	}

	for i := k - 2; i < size-2; i++ {
		currentVertex := charsToKmer(seq, k-1, i-k+2)
		kmerIndex := currentVertex * 5
		var nextEdge uint64
		if countEdges(kmerTab, int(kmerIndex)) > 0 {
			nextEdge = pickNextLetterWeighted(kmerTab[kmerIndex:kmerIndex+5], g)
			kmerTab[kmerIndex+nextEdge]--
		} else {
			nextEdge = eulerPath[currentVertex]
		}
		seq[i+1] = letterSet[nextEdge]
	}
}
