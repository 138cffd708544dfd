// Package randutil centralises construction of the random sources used to
// draw hash key material, so every call site gets reproducible key pairs
// from a single int64 seed.
package randutil

import (
	"crypto/rand"
	"encoding/binary"

	mrand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. The mixer spreads the seed into the two 64-bit values rand/v2's
// PCG requires, so nearby seeds still produce unrelated key pairs.
func New(seed int64) *mrand.Rand {
	u := uint64(seed)
	return mrand.New(mrand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed draws a fresh seed from the OS entropy source, for callers that want
// unpredictable keys rather than reproducible ones.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("failed to read random seed: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
