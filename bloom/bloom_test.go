package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hashseq"
	"github.com/lox/hashseq/internal/randutil"
)

func TestNoFalseNegatives(t *testing.T) {
	f := New(1000, 0.01)

	for i := 0; i < 1000; i++ {
		f.AddString(fmt.Sprintf("member-%d", i))
	}
	require.Equal(t, uint64(1000), f.Count())

	for i := 0; i < 1000; i++ {
		assert.True(t, f.TestString(fmt.Sprintf("member-%d", i)), "member-%d", i)
	}
}

func TestFalsePositiveRateBounded(t *testing.T) {
	const n = 5000
	f := New(n, 0.01)

	for i := 0; i < n; i++ {
		f.AddString(fmt.Sprintf("member-%d", i))
	}

	falsePositives := 0
	const probes = 10000
	for i := 0; i < probes; i++ {
		if f.TestString(fmt.Sprintf("absent-%d", i)) {
			falsePositives++
		}
	}

	// Sized for 1%; allow generous slack over the sampling noise.
	rate := float64(falsePositives) / probes
	assert.Less(t, rate, 0.05, "false positive rate %.4f", rate)
}

func TestEmptyFilterRejectsEverything(t *testing.T) {
	f := New(100, 0.01)

	for i := 0; i < 100; i++ {
		assert.False(t, f.TestString(fmt.Sprintf("key-%d", i)))
	}
	assert.Zero(t, f.FillRatio())
}

func TestSizing(t *testing.T) {
	tests := []struct {
		n     uint64
		fp    float64
		wantK int
	}{
		{1000, 0.01, 7},
		{1000, 0.001, 10},
		{10000, 0.05, 4},
	}

	for _, tt := range tests {
		f := New(tt.n, tt.fp)
		assert.Equal(t, tt.wantK, f.K(), "n=%d fp=%v", tt.n, tt.fp)
		assert.NotZero(t, f.Bits())
	}
}

func TestDegenerateArguments(t *testing.T) {
	// Zero capacity and out-of-range rates fall back to safe defaults
	// rather than panicking.
	f := New(0, 5.0)
	f.AddString("x")
	assert.True(t, f.TestString("x"))

	f = NewFilter(1, 0)
	assert.GreaterOrEqual(t, f.Bits(), uint64(64))
	assert.GreaterOrEqual(t, f.K(), 1)
}

func TestDeterministicAcrossInstances(t *testing.T) {
	// Default keys are fixed, so two identically sized filters fed the same
	// keys set exactly the same bits.
	a := New(100, 0.01)
	b := New(100, 0.01)

	for i := 0; i < 50; i++ {
		a.AddString(fmt.Sprintf("member-%d", i))
		b.AddString(fmt.Sprintf("member-%d", i))
	}

	assert.Equal(t, a.FillRatio(), b.FillRatio())
	for i := 0; i < 200; i++ {
		key := fmt.Sprintf("probe-%d", i)
		assert.Equal(t, a.TestString(key), b.TestString(key), "key %s", key)
	}
}

func TestWithKeysChangesProbes(t *testing.T) {
	def := New(100, 0.01)
	alt := New(100, 0.01, WithKeys(hashseq.Keys{K0: 1}, hashseq.Keys{K0: 2}))

	def.AddString("key")
	alt.AddString("key")

	// Both must still find their own member.
	assert.True(t, def.TestString("key"))
	assert.True(t, alt.TestString("key"))
}

func TestWithBuilder(t *testing.T) {
	rng := randutil.New(7)
	b := hashseq.NewRandom(rng)

	f := New(100, 0.01, WithBuilder(b))
	f.AddString("key")
	assert.True(t, f.TestString("key"))
}

func TestFillRatioGrows(t *testing.T) {
	f := New(1000, 0.01)
	require.Zero(t, f.FillRatio())

	for i := 0; i < 500; i++ {
		f.AddString(fmt.Sprintf("member-%d", i))
	}
	half := f.FillRatio()
	assert.Greater(t, half, 0.0)
	assert.Less(t, half, 1.0)

	fp := f.EstimatedFalsePositiveRate()
	assert.Greater(t, fp, 0.0)
	assert.Less(t, fp, 0.01)
}
