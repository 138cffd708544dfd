// Package hashseq derives an unbounded sequence of pseudo-independent 64-bit
// hash values from a single input using only two underlying hash
// computations.
//
// This is the classical double-hashing trick (Kirsch–Mitzenmacher): run two
// independently keyed hash functions over the same byte stream, then expand
// the two resulting digests into as many derived values as needed without
// any further hashing. Bloom filters, count-min sketches, HyperLogLog and
// similar probabilistic structures need k hash values per item; hashseq
// produces them for the price of two.
//
// The entry point is a [PairBuilder], which builds [PairHasher] accumulators
// over two keyed SipHash instances:
//
//	builder := hashseq.New(hashseq.Keys{K0: 0, K1: 0}, hashseq.Keys{K0: 1, K1: 1})
//	gen := hashseq.SumString(builder, "Hello world!")
//	for _, d := range gen.Take(10) {
//		fmt.Println(d)
//	}
//
// The derived sequence is deterministic for fixed keys and input, but it is
// not cryptographically secure: only the two base digests carry the
// unpredictability of the keyed hash. Do not use it as a CSPRNG.
package hashseq
