package hashseq

import (
	rand "math/rand/v2"
)

// PairBuilder builds fresh [PairHasher] accumulators from two inner
// factories. It holds no mutable state, so one PairBuilder can serve any
// number of goroutines concurrently.
type PairBuilder struct {
	b1, b2 Builder
}

// NewPairBuilder combines two accumulator factories into a pair factory.
func NewPairBuilder(b1, b2 Builder) PairBuilder {
	return PairBuilder{b1: b1, b2: b2}
}

// New returns a pair factory over two SipHash instances keyed with the
// given key pairs. Fixed keys give fully reproducible sequences.
func New(keys1, keys2 Keys) PairBuilder {
	return NewPairBuilder(NewSipBuilder(keys1.K0, keys1.K1), NewSipBuilder(keys2.K0, keys2.K1))
}

// NewRandom returns a pair factory over two SipHash instances keyed with
// four fresh 64-bit values drawn from rng.
func NewRandom(rng *rand.Rand) PairBuilder {
	return NewPairBuilder(NewRandomSipBuilder(rng), NewRandomSipBuilder(rng))
}

// New builds a fresh pair accumulator. Each call constructs two new inner
// accumulators; nothing is shared between instances.
func (b PairBuilder) New() SeqHasher {
	return NewPairHasher(b.b1.New(), b.b2.New())
}
