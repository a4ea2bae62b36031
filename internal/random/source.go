package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Source is the entropy consumed by question and option generation.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int

	// Shuffle permutes n elements in place through swap (Fisher–Yates).
	Shuffle(n int, swap func(i, j int))
}

// PCG is a Source backed by math/rand/v2's PCG generator.
// It is not safe for concurrent use.
type PCG struct {
	r    *rand.Rand
	seed uint64
}

// New creates a PCG source. A zero seed draws a seed from crypto/rand.
func New(seed uint64) *PCG {
	if seed == 0 {
		seed = cryptoSeed()
	}
	return &PCG{
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the source was built with.
func (p *PCG) Seed() uint64 {
	return p.seed
}

func (p *PCG) IntN(n int) int {
	return p.r.IntN(n)
}

func (p *PCG) Shuffle(n int, swap func(i, j int)) {
	p.r.Shuffle(n, swap)
}

// IntRange returns a uniform integer in [min, max] inclusive.
// If max < min the bounds are swapped.
func IntRange(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return src.IntN(max-min+1) + min
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

func cryptoSeed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	seed := binary.LittleEndian.Uint64(b[:])
	if seed == 0 {
		seed = 1
	}
	return seed
}
