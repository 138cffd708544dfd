package hashseq

import "iter"

// Generator lazily expands two seed digests into an unbounded sequence of
// derived digests. The seeds are typically the outputs of the two inner
// accumulators of a [PairHasher].
//
// The expansion is a polynomial recurrence over wrapping 64-bit arithmetic:
// each step emits a, then advances a += b, b += c, c += c+1. The first
// difference of a is b, the second difference grows by c, and c itself grows
// geometrically. This generalises the linear h1 + i*h2 combination from the
// Bloom-filter literature; the evolving correction term avoids the short
// cycles a purely linear combination falls into when b is small or zero.
//
// A Generator is single-pass. Reconstructing one from the same two seeds
// reproduces the sequence exactly.
type Generator struct {
	a, b, c uint64
}

// NewGenerator returns a generator seeded with the two base digests.
func NewGenerator(a0, b0 uint64) *Generator {
	return &Generator{a: a0, b: b0}
}

// Next returns the next digest in the sequence. The sequence never
// terminates; every step is defined for all inputs.
func (g *Generator) Next() Digest {
	d := Digest(g.a)
	g.a += g.b
	g.b += g.c
	g.c += g.c + 1
	return d
}

// Values returns the remainder of the sequence as an infinite iterator.
// Callers must bound the iteration themselves; ranging over it without a
// break does not terminate.
func (g *Generator) Values() iter.Seq[Digest] {
	return func(yield func(Digest) bool) {
		for yield(g.Next()) {
		}
	}
}

// Take consumes and returns the next n digests.
func (g *Generator) Take(n int) []Digest {
	out := make([]Digest, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
