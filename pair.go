package hashseq

import (
	"encoding/binary"
	"hash"
)

// PairHasher runs two independently keyed accumulators over one shared byte
// stream. It implements [hash.Hash64] (Sum64 combines the two inner digests
// into a single value) and [SeqHasher] (Seq expands them into the derived
// digest sequence).
//
// A PairHasher is single-use: once finalized, the two inner accumulators
// hold the state the generator was seeded from, and further writes would
// silently diverge from it. Reset rebuilds the hasher in place; otherwise
// discard it and build a new one.
type PairHasher struct {
	h1, h2 hash.Hash64
}

// NewPairHasher combines two accumulators into a pair hasher. The two should
// be keyed independently; with identical inner accumulators the derived
// sequence degenerates.
func NewPairHasher(h1, h2 hash.Hash64) *PairHasher {
	return &PairHasher{h1: h1, h2: h2}
}

// Write forwards b to both inner accumulators, in order, unbuffered and
// untransformed. It never returns an error.
func (p *PairHasher) Write(b []byte) (int, error) {
	p.h1.Write(b)
	p.h2.Write(b)
	return len(b), nil
}

// Sum64 returns the wrapping sum of the two inner digests. It does not
// consume the accumulator state.
func (p *PairHasher) Sum64() uint64 {
	return p.h1.Sum64() + p.h2.Sum64()
}

// Sum appends the big-endian encoding of Sum64 to b.
func (p *PairHasher) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, p.Sum64())
}

// Reset restores both inner accumulators to their initial keyed state.
func (p *PairHasher) Reset() {
	p.h1.Reset()
	p.h2.Reset()
}

// Size returns the number of bytes Sum appends.
func (p *PairHasher) Size() int { return 8 }

// BlockSize returns 1: writes are forwarded unbuffered, so any chunking of
// the input stream yields identical digests.
func (p *PairHasher) BlockSize() int { return 1 }

// Seq reads each inner digest once and returns a generator seeded with the
// pair. This is the primary contract of the package: one hashed value
// becomes an unbounded supply of derived hash values.
func (p *PairHasher) Seq() *Generator {
	return NewGenerator(p.h1.Sum64(), p.h2.Sum64())
}
