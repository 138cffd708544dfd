// Package bloom implements a Bloom filter on top of the hashseq digest
// sequence. Each inserted key is hashed exactly twice; the k probe positions
// come from the derived sequence instead of k independent hash computations.
//
// False positives are possible, false negatives are not: if Test returns
// false the key was never added.
package bloom

import (
	"math"
	"math/bits"

	"github.com/lox/hashseq"
)

// Fixed default keys so that filters built without options are reproducible
// across processes.
const (
	defaultK0 = 0x0ddc0ffeebadf00d
	defaultK1 = 0xcafebabedeadbeef
	defaultK2 = 0x0123456789abcdef
	defaultK3 = 0xfedcba9876543210
)

// Filter is a classic bit-array Bloom filter. It is not safe for concurrent
// mutation; guard it externally or shard per goroutine.
type Filter struct {
	bits    []uint64
	m       uint64 // filter size in bits
	k       int    // probes per key
	n       uint64 // keys added
	builder hashseq.PairBuilder
}

// Option configures a Filter at construction time.
type Option func(*Filter)

// WithKeys overrides the default hash keys. Filters only give meaningful
// answers for keys added with the same hash keys.
func WithKeys(keys1, keys2 hashseq.Keys) Option {
	return func(f *Filter) {
		f.builder = hashseq.New(keys1, keys2)
	}
}

// WithBuilder substitutes a different sequence-capable factory, such as a
// pair of xxhash accumulators for trusted input.
func WithBuilder(b hashseq.PairBuilder) Option {
	return func(f *Filter) {
		f.builder = b
	}
}

// New returns a filter sized to hold n keys at roughly the given false
// positive rate, using the standard sizing formulas:
//
//	m = -n·ln(p)/ln(2)²   k = (m/n)·ln(2)
func New(n uint64, fp float64, opts ...Option) *Filter {
	if n == 0 {
		n = 1
	}
	if fp <= 0 || fp >= 1 {
		fp = 0.01
	}
	m := uint64(math.Ceil(-float64(n) * math.Log(fp) / (math.Ln2 * math.Ln2)))
	k := int(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}
	return NewFilter(m, k, opts...)
}

// NewFilter returns a filter with an explicit size in bits and probe count.
func NewFilter(m uint64, k int, opts ...Option) *Filter {
	if m < 64 {
		m = 64
	}
	if k < 1 {
		k = 1
	}
	f := &Filter{
		bits:    make([]uint64, (m+63)/64),
		m:       m,
		k:       k,
		builder: hashseq.New(hashseq.Keys{K0: defaultK0, K1: defaultK1}, hashseq.Keys{K0: defaultK2, K1: defaultK3}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Add inserts a key into the filter.
func (f *Filter) Add(key []byte) {
	gen := hashseq.SumBytes(f.builder, key)
	for i := 0; i < f.k; i++ {
		pos := gen.Next().Uint64() % f.m
		f.bits[pos>>6] |= 1 << (pos & 63)
	}
	f.n++
}

// AddString inserts a string key.
func (f *Filter) AddString(key string) {
	f.Add([]byte(key))
}

// Test reports whether the key may have been added. A false result is
// definitive; a true result may be a false positive.
func (f *Filter) Test(key []byte) bool {
	gen := hashseq.SumBytes(f.builder, key)
	for i := 0; i < f.k; i++ {
		pos := gen.Next().Uint64() % f.m
		if f.bits[pos>>6]&(1<<(pos&63)) == 0 {
			return false
		}
	}
	return true
}

// TestString reports whether the string key may have been added.
func (f *Filter) TestString(key string) bool {
	return f.Test([]byte(key))
}

// Count returns the number of keys added so far.
func (f *Filter) Count() uint64 { return f.n }

// K returns the number of probe positions per key.
func (f *Filter) K() int { return f.k }

// Bits returns the filter size in bits.
func (f *Filter) Bits() uint64 { return f.m }

// FillRatio returns the fraction of bits currently set.
func (f *Filter) FillRatio() float64 {
	var set int
	for _, w := range f.bits {
		set += bits.OnesCount64(w)
	}
	return float64(set) / float64(f.m)
}

// EstimatedFalsePositiveRate returns the expected false positive probability
// given the keys added so far.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	exp := -float64(f.k) * float64(f.n) / float64(f.m)
	return math.Pow(1-math.Exp(exp), float64(f.k))
}
