package hashseq

import (
	"encoding/binary"
	"hash"
	rand "math/rand/v2"

	"github.com/dchest/siphash"
)

// Keys is the 128-bit key pair that seeds one keyed accumulator instance.
type Keys struct {
	K0, K1 uint64
}

// SipBuilder builds SipHash-2-4 accumulators from a fixed key pair. SipHash
// is the default inner hash for [PairBuilder]: a keyed pseudorandom function
// over byte streams with 64-bit output.
type SipBuilder struct {
	keys Keys
}

// NewSipBuilder returns a factory for SipHash accumulators keyed with
// (k0, k1).
func NewSipBuilder(k0, k1 uint64) SipBuilder {
	return SipBuilder{keys: Keys{K0: k0, K1: k1}}
}

// NewRandomSipBuilder draws a fresh key pair from rng.
func NewRandomSipBuilder(rng *rand.Rand) SipBuilder {
	return NewSipBuilder(rng.Uint64(), rng.Uint64())
}

// New returns a fresh SipHash accumulator. Every call starts from the same
// keyed initial state.
func (b SipBuilder) New() hash.Hash64 {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], b.keys.K0)
	binary.LittleEndian.PutUint64(key[8:], b.keys.K1)
	return siphash.New(key[:])
}
