package hashseq

import (
	"hash"
	"io"
)

// Builder constructs fresh hash accumulators from fixed key material. Each
// call to New returns an independent accumulator with no residual state.
// Implementations hold only immutable configuration, so a single Builder is
// safe to share across goroutines.
type Builder interface {
	New() hash.Hash64
}

// SeqHasher is an accumulator that can finalize into a digest sequence in
// addition to the ordinary single-value finalization of [hash.Hash64].
type SeqHasher interface {
	hash.Hash64

	// Seq finalizes the accumulator into a generator over the derived
	// digest sequence. The accumulator must not be written to afterwards
	// without a Reset; obtaining the same sequence again requires a fresh
	// accumulator.
	Seq() *Generator
}

// SeqBuilder constructs accumulators capable of sequence finalization.
// [PairBuilder] is the concrete implementation; the convenience functions
// below are written against this interface so that any conforming factory
// gets them for free.
type SeqBuilder interface {
	New() SeqHasher
}

// Sum builds a fresh accumulator, writes v's byte representation into it and
// finalizes it into a digest sequence. The error is v's own: accumulator
// writes cannot fail, so a non-nil error can only originate from WriteTo
// sourcing its bytes.
func Sum(b SeqBuilder, v io.WriterTo) (*Generator, error) {
	h := b.New()
	if _, err := v.WriteTo(h); err != nil {
		return nil, err
	}
	return h.Seq(), nil
}

// SumBytes hashes one byte slice into a digest sequence.
func SumBytes(b SeqBuilder, p []byte) *Generator {
	h := b.New()
	h.Write(p)
	return h.Seq()
}

// SumString hashes one string into a digest sequence.
func SumString(b SeqBuilder, s string) *Generator {
	h := b.New()
	io.WriteString(h, s)
	return h.Seq()
}

// Sum64Bytes hashes one byte slice into a single combined digest, without
// deriving a sequence.
func Sum64Bytes(b SeqBuilder, p []byte) uint64 {
	h := b.New()
	h.Write(p)
	return h.Sum64()
}
