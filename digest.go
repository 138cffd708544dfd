package hashseq

import "strconv"

// Digest is a single 64-bit hash value. Two digests are equal iff their
// underlying integers are equal; ordering follows the integer value.
type Digest uint64

// Uint64 returns the digest as its underlying integer.
func (d Digest) Uint64() uint64 { return uint64(d) }

// Compare returns -1 if d is less than other, 1 if greater, 0 if equal.
func (d Digest) Compare(other Digest) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	}
	return 0
}

// String returns the decimal representation of the digest.
func (d Digest) String() string {
	return strconv.FormatUint(uint64(d), 10)
}
