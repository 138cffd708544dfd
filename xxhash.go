package hashseq

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash/v2"
)

// XXBuilder builds xxHash64 accumulators keyed by a fixed key pair. xxhash
// has no native keyed construction, so the key words are written into the
// stream ahead of the caller's data; distinct keys then put every new
// accumulator into a distinct initial state.
//
// xxHash is much faster than SipHash but is not a PRF. Prefer [SipBuilder]
// unless inputs are trusted and raw throughput matters.
type XXBuilder struct {
	keys Keys
}

// NewXXBuilder returns a factory for xxHash64 accumulators keyed with
// (k0, k1).
func NewXXBuilder(k0, k1 uint64) XXBuilder {
	return XXBuilder{keys: Keys{K0: k0, K1: k1}}
}

// New returns a fresh xxHash accumulator with the key prefix already
// written.
func (b XXBuilder) New() hash.Hash64 {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], b.keys.K0)
	binary.LittleEndian.PutUint64(key[8:], b.keys.K1)
	h := xxhash.New()
	h.Write(key[:])
	return h
}
