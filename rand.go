package treap

import (
	"math/rand/v2"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

// float64Unit scales the top 53 bits of a uint64 into [0, 1).
const float64Unit = 1.0 / (1 << 53)

// PrioritySource supplies node priorities. Priority must return values
// drawn independently and uniformly from [0, 1); the expected height of the
// treap is only logarithmic under that assumption.
type PrioritySource interface {
	Priority() float64
}

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// xorshift is a xorshift64* generator. It is not safe for concurrent use,
// which matches the treap it feeds.
type xorshift struct {
	state uint64
}

// NewSource returns a deterministic PrioritySource seeded with seed. Two
// treaps built from sources with the same seed and the same sequence of
// insertions have identical shapes. A zero seed is replaced by a fixed
// non-zero constant.
func NewSource(seed uint64) PrioritySource {
	if seed == 0 {
		seed = defaultSeed
	}
	return &xorshift{state: seed}
}

func newTimeSource() PrioritySource {
	return NewSource(newRandomSeed())
}

func (r *xorshift) nextRandom64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

// Priority implements PrioritySource.
func (r *xorshift) Priority() float64 {
	return float64(r.nextRandom64()>>11) * float64Unit
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource adapts a math/rand/v2 generator, for callers that already
// manage one (for example rand.New(rand.NewPCG(1, 2)) in tests).
func NewRandSource(r *rand.Rand) PrioritySource {
	return randSource{r: r}
}

func (s randSource) Priority() float64 {
	return s.r.Float64()
}
