package treap

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityDistributionIsUniform(t *testing.T) {
	const (
		numSamples = 1000000
		buckets    = 16
	)
	var counts [buckets]int
	src := NewSource(0x123456789abcdef)
	for range numSamples {
		p := src.Priority()
		require.True(t, p >= 0 && p < 1, "priority %v outside [0, 1)", p)
		counts[int(p*buckets)]++
	}

	// Each bucket count is Binomial(numSamples, 1/buckets). We tolerate
	// deviations up to five standard deviations.
	const pBucket = 1.0 / buckets
	mean := numSamples * pBucket
	tolerance := 5 * math.Sqrt(numSamples*pBucket*(1-pBucket))
	for i, c := range counts {
		if math.Abs(float64(c)-mean) > tolerance {
			t.Errorf("bucket %d holds %d samples, want %.0f ± %.0f", i, c, mean, tolerance)
		}
	}
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for range 100 {
		assert.Equal(t, a.Priority(), b.Priority())
	}

	c := NewSource(43)
	same := 0
	a = NewSource(42)
	for range 100 {
		if a.Priority() == c.Priority() {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestZeroSeedIsReplaced(t *testing.T) {
	a, b := NewSource(0), NewSource(defaultSeed)
	for range 10 {
		p := a.Priority()
		assert.Equal(t, b.Priority(), p)
		assert.NotZero(t, p)
	}
}

func TestRandSourceFollowsGenerator(t *testing.T) {
	src := NewRandSource(rand.New(rand.NewPCG(1, 2)))
	ref := rand.New(rand.NewPCG(1, 2))
	for range 10 {
		assert.Equal(t, ref.Float64(), src.Priority())
	}
}

func TestWithPrioritySourceIgnoresNil(t *testing.T) {
	tr := New[int, int](WithSeed(5), WithPrioritySource(nil))
	require.NotNil(t, tr.source)

	tr = New[int, int]()
	assert.Nil(t, tr.source, "the default source is created lazily")
	tr.Set(1, 1)
	assert.NotNil(t, tr.source)
}

func BenchmarkPriority(b *testing.B) {
	src := NewSource(newRandomSeed())
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += src.Priority()
	}
	_ = sink
}
